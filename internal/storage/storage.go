// Package storage реализует хранилище пользователей на основе PostgreSQL.
// Storage создаётся при старте приложения, передаётся в сервисы явно
// и закрывается при остановке.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrUserNotFound возвращается, если ни одна строка не подошла под фильтр.
var ErrUserNotFound = errors.New("user not found")

// Storage инкапсулирует пул соединений с PostgreSQL.
// Каждый запрос берёт соединение из пула на время вызова и возвращает его.
type Storage struct {
	DB *sql.DB
}

// New открывает пул соединений и проверяет доступность базы.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// NewWithDB оборачивает уже открытый пул, например sqlmock в тестах.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	const op = "storage.Close"
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
