package models

// Admin is a back-office account. Password holds a bcrypt hash and is
// never serialized.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Login returns whichever identifier the client supplied; the form
// historically sent username, the admin panel sends email.
func (in LoginInput) Login() string {
	if in.Username != "" {
		return in.Username
	}
	return in.Email
}
