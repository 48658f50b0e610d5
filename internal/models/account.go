package models

// AccountType — способ регистрации или входа.
type AccountType string

const (
	AccountEmail  AccountType = "email"
	AccountPhone  AccountType = "phone"
	AccountWeixin AccountType = "weixin"
)

// Valid сообщает, входит ли значение в допустимый набор.
func (t AccountType) Valid() bool {
	switch t {
	case AccountEmail, AccountPhone, AccountWeixin:
		return true
	}
	return false
}

// Строковые поля запросов объявлены указателями: required проверяет наличие
// ключа в JSON, пустая строка допустима.

// PhoneNumberRequest — тело /user/phone_exist.
type PhoneNumberRequest struct {
	PhoneNumber *string `json:"phonenumber" validate:"required"`
}

// EmailRequest — тело /user/mail_exist.
type EmailRequest struct {
	Email *string `json:"email" validate:"required"`
}

// SignupInfo — учётные данные при регистрации. Userinfo хранит почту или телефон.
type SignupInfo struct {
	Username *string `json:"username" validate:"required"`
	Pwd      *string `json:"pwd" validate:"required"`
	Userinfo *string `json:"userinfo" validate:"required"`
}

// SignupRequest — тело /user/signup.
type SignupRequest struct {
	Type AccountType `json:"type" validate:"required,enum"`
	Data SignupInfo  `json:"data"`
}

// LoginCredentials — учётные данные при входе. Для weixin Userinfo содержит
// код авторизации, а Pwd не передаётся.
type LoginCredentials struct {
	Userinfo *string `json:"userinfo" validate:"required"`
	Pwd      *string `json:"pwd"`
}

// LoginRequest — тело /user/login.
type LoginRequest struct {
	Type AccountType      `json:"type" validate:"required,enum"`
	Data LoginCredentials `json:"data"`
}

// LoginResult — содержимое ответа /user/login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
