package models

// Session — несекретная часть учётной записи, которая выдаётся клиенту
// после входа или регистрации и сопровождает каждый запрос к лекарствам.
// Значение подписывается в JWT и явно прокидывается через контекст запроса,
// а не читается из глобального состояния.
type Session struct {
	UID      string `json:"uid"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
}
