// Package password содержит заглушку "хеширования" пароля.
//
// ВНИМАНИЕ: FakeHash не является криптографической функцией. Пароль
// хранится открытым текстом с фиксированным суффиксом. Формат сохранён
// ради совместимости с существующими строками таблицы users и должен быть
// заменён настоящим хешированием вместе с миграцией данных.
package password

// Suffix дописывается к паролю перед сохранением.
const Suffix = "notreallyhashed"

// FakeHash возвращает значение для колонки hashed_password.
//
// Небезопасно: результат обратим отбрасыванием суффикса.
func FakeHash(password string) string {
	return password + Suffix
}
