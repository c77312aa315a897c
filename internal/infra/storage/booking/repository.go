package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/osteosalud/booking-service/internal/domain"
	"github.com/osteosalud/booking-service/pkg/dbmetrics"
	"github.com/osteosalud/booking-service/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"service_id",
	"service_name",
	"price",
	"booking_date",
	"start_time",
	"client_name",
	"client_phone",
	"client_address",
	"client_city",
	"user_id",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// ID назначается здесь (UUID), created_at - базой данных.
// Частичный уникальный индекс на (booking_date, start_time) WHERE
// status = 'confirmed' страхует от конкурирующей записи на тот же слот,
// прошедшей мимо проверки доступности
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_id",
			"service_name",
			"price",
			"booking_date",
			"start_time",
			"client_name",
			"client_phone",
			"client_address",
			"client_city",
			"user_id",
			"status",
		).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.ServiceName,
			booking.Price,
			booking.Date,
			booking.Time,
			booking.ClientName,
			booking.ClientPhone,
			booking.ClientAddress,
			booking.ClientCity,
			booking.UserID,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.Price,
		&booking.Date,
		&booking.Time,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.ClientAddress,
		&booking.ClientCity,
		&booking.UserID,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Владельцу (UserID) - опционально
// - Конкретной дате (Date) или периоду (FromDate, ToDate) - опционально
// - Статусу (Status) - опционально
// - Включению отменённых бронирований (IncludeCancelled)
//
// Результат отсортирован по дате и времени создания. Канонический
// хронологический порядок по метке времени слота вычисляется выше,
// в агрегаторе агенды: метки часов не дополнены нулями и строковая
// сортировка start_time ("10:00" < "9:00") была бы некорректной
//
// Внутри транзакции выборка по конкретной дате блокирует строки
// (FOR UPDATE) - используется проверкой доступности слота при создании
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.ToDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC, created_at ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel переводит бронирование в статус cancelled
// Физическое удаление не выполняется - запись сохраняется в истории.
// Повторная отмена уже отменённого бронирования - no-op
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Reschedule переносит бронирование на новые дату и время
// Доступность нового слота проверяет вызывающая сторона (в транзакции)
func (r *Repository) Reschedule(ctx context.Context, id string, date, timeLabel string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", date).
		Set("start_time", timeLabel).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.ServiceName,
			&booking.Price,
			&booking.Date,
			&booking.Time,
			&booking.ClientName,
			&booking.ClientPhone,
			&booking.ClientAddress,
			&booking.ClientCity,
			&booking.UserID,
			&booking.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
