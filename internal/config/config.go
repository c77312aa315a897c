package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/osteosalud/booking-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Business BusinessConfig `toml:"business"`
	Admin    AdminConfig    `toml:"admin"`
	Demo     DemoConfig     `toml:"demo"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочие часы практики
// Перерыв опционален: отсутствие break_start/break_end означает день без перерыва
type ScheduleConfig struct {
	Start      int  `toml:"start"`
	End        int  `toml:"end"`
	BreakStart *int `toml:"break_start"`
	BreakEnd   *int `toml:"break_end"`
}

// BusinessConfig контактные данные практики
type BusinessConfig struct {
	Name    string `toml:"name"`
	Phone   string `toml:"phone"`
	Address string `toml:"address"`
}

// AdminConfig настройки доступа администратора
// PIN хранится только в виде bcrypt-хэша
type AdminConfig struct {
	PINHash         string `toml:"pin_hash"`
	TokenSecret     string `toml:"token_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// DemoConfig настройки демо-режима
// В демо-режиме сервис работает на неперсистентном наборе данных в памяти
type DemoConfig struct {
	Enabled    bool `toml:"enabled"`
	FallbackOK bool `toml:"fallback_on_db_error"`
}

// CatalogConfig статический каталог услуг
type CatalogConfig struct {
	Services []ServiceConfig `toml:"services"`
}

// ServiceConfig одна услуга каталога
type ServiceConfig struct {
	ID              int64   `toml:"id"`
	Title           string  `toml:"title"`
	Description     string  `toml:"description"`
	Price           float64 `toml:"price"`
	DurationMinutes int     `toml:"duration_minutes"`
	DisplayHint     string  `toml:"display_hint"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-service"
	}
	if c.Schedule.Start == 0 && c.Schedule.End == 0 {
		c.Schedule.Start = domain.DefaultScheduleStart
		c.Schedule.End = domain.DefaultScheduleEnd
	}
	if c.Admin.TokenTTLMinutes == 0 {
		c.Admin.TokenTTLMinutes = 60
	}
}

func (c *Config) validate() error {
	if c.Schedule.Start >= c.Schedule.End {
		return fmt.Errorf("config: schedule start (%d) must be before end (%d)",
			c.Schedule.Start, c.Schedule.End)
	}
	if (c.Schedule.BreakStart == nil) != (c.Schedule.BreakEnd == nil) {
		return fmt.Errorf("config: break_start and break_end must be set together")
	}
	if c.Schedule.BreakStart != nil && *c.Schedule.BreakStart >= *c.Schedule.BreakEnd {
		return fmt.Errorf("config: break_start (%d) must be before break_end (%d)",
			*c.Schedule.BreakStart, *c.Schedule.BreakEnd)
	}
	if !c.Demo.Enabled {
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("config: database host and dbname are required outside demo mode")
		}
	}
	if c.Admin.PINHash == "" {
		return fmt.Errorf("config: admin pin_hash is required")
	}
	if c.Admin.TokenSecret == "" {
		return fmt.Errorf("config: admin token_secret is required")
	}
	return nil
}

// DomainSchedule конвертирует конфигурацию расписания в domain модель
func (c *Config) DomainSchedule() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		Start:      c.Schedule.Start,
		End:        c.Schedule.End,
		BreakStart: c.Schedule.BreakStart,
		BreakEnd:   c.Schedule.BreakEnd,
	}
}

// DomainServices конвертирует каталог услуг в domain модели
func (c *Config) DomainServices() []domain.Service {
	services := make([]domain.Service, 0, len(c.Catalog.Services))
	for _, s := range c.Catalog.Services {
		services = append(services, domain.Service{
			ID:              s.ID,
			Title:           s.Title,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			DisplayHint:     s.DisplayHint,
		})
	}
	return services
}

// DomainBusinessInfo конвертирует контактные данные в domain модель
func (c *Config) DomainBusinessInfo() domain.BusinessInfo {
	return domain.BusinessInfo{
		Name:    c.Business.Name,
		Phone:   c.Business.Phone,
		Address: c.Business.Address,
	}
}
