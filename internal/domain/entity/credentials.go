package entity

// Credentials is the email/password pair a caller collects before login or
// registration. Values are passed through as entered.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
