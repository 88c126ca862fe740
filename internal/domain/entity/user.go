package entity

import "strings"

// User is a staff account. Passwords are stored and compared in plain text.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	Login    string `json:"usuario"`
	Password string `json:"password"`
	Role     Role   `json:"rol"`
}

func (u User) GetID() string { return u.ID }

// Matches reports whether q appears in the name or login, ignoring case
func (u User) Matches(q string) bool {
	return containsFold(u.Name, q) || containsFold(u.Login, q)
}

// SameLogin compares login names the way registration does: case-insensitive.
func (u User) SameLogin(login string) bool {
	return strings.EqualFold(u.Login, login)
}
