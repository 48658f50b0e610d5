// Package models содержит доменные сущности сервиса и формы запросов
// и ответов API. Формы запросов несут теги валидации, формы ответов
// реализуют закрытое объединение Payload.
package models

// User представляет строку таблицы users.
type User struct {
	InternalID     int64   // Автоинкрементный первичный ключ
	ID             string  // Внешний идентификатор (имя пользователя при регистрации)
	Email          *string // Электронная почта, если регистрация по почте
	Phone          *string // Телефон, если регистрация по телефону
	HashedPassword string  // Пароль с фиксированным суффиксом, см. password.FakeHash
}

// NewUser — данные для создания пользователя.
type NewUser struct {
	ID       string
	Email    *string
	Phone    *string
	Password string
}
