// Package status содержит фиксированную таблицу исходов запроса.
// Каждый исход хранит числовой код и сообщение, которые попадают
// в поля status и msg ответа.
package status

// Status — перечисление исходов обработки запроса.
type Status int

const (
	// Success — запрос выполнен.
	Success Status = iota + 1
	// Fail — некорректный запрос или неверные учётные данные.
	Fail
	// Unauthorized — объявлен, но ни один обработчик его не возвращает.
	Unauthorized
	// NotFound — сущность не найдена.
	NotFound
	// InternalError — ошибка хранилища.
	InternalError
)

type entry struct {
	name string
	code int
	msg  string
}

var table = map[Status]entry{
	Success:       {name: "SUCCESS", code: 200, msg: "ok"},
	Fail:          {name: "FAIL", code: 400, msg: "bad request"},
	Unauthorized:  {name: "UNAUTHORIZED", code: 401, msg: "unauthorized"},
	NotFound:      {name: "NOTFOUND", code: 404, msg: "not found"},
	InternalError: {name: "INTERNALERROR", code: 500, msg: "internal error"},
}

// Code возвращает числовой код исхода.
func (s Status) Code() int {
	return table[s].code
}

// Msg возвращает сообщение исхода.
func (s Status) Msg() string {
	return table[s].msg
}

// Pair возвращает пару {status, msg}.
func (s Status) Pair() (int, string) {
	e := table[s]
	return e.code, e.msg
}

func (s Status) String() string {
	if e, ok := table[s]; ok {
		return e.name
	}
	return "UNKNOWN"
}

// Lookup находит исход по имени, например "NOTFOUND".
func Lookup(name string) (Status, bool) {
	for s, e := range table {
		if e.name == name {
			return s, true
		}
	}
	return 0, false
}
