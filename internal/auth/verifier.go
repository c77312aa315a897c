package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Verifier абстракция проверки учетных данных администратора
// Реализация не привязана к способу ввода (форма, жест, CLI)
type Verifier interface {
	// Verify возвращает nil, если учетные данные верны,
	// и ErrInvalidCredential в противном случае
	Verify(credential string) error
}

// PINVerifier проверяет PIN-код по bcrypt-хэшу из конфигурации
// Сам PIN нигде не хранится и не логируется
type PINVerifier struct {
	hash []byte
}

// NewPINVerifier создает верификатор для указанного bcrypt-хэша
func NewPINVerifier(pinHash string) *PINVerifier {
	return &PINVerifier{hash: []byte(pinHash)}
}

// Verify сравнивает PIN с хэшем
func (v *PINVerifier) Verify(credential string) error {
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(credential)); err != nil {
		return ErrInvalidCredential
	}
	return nil
}

// HashPIN хэширует PIN для записи в конфигурацию
// Используется утилитами подготовки конфигурации и тестами
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
