package bookingmem

import (
	"context"
	"sync"
)

// TxManager сериализует "транзакции" демо-режима глобальным мьютексом
// Этого достаточно: репозиторий один, процесс один, персистентности нет
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает менеджер транзакций демо-режима
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn, удерживая глобальную блокировку
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn, удерживая глобальную блокировку
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn, удерживая глобальную блокировку
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
