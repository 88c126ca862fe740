package entity

// Session is the snapshot of the logged-in user. It never carries the password.
type Session struct {
	ID    string `json:"id"`
	Login string `json:"usuario"`
	Name  string `json:"nombre"`
	Role  Role   `json:"rol"`
}

// NewSession builds the snapshot stored on login
func NewSession(u *User) *Session {
	return &Session{
		ID:    u.ID,
		Login: u.Login,
		Name:  u.Name,
		Role:  u.Role,
	}
}
