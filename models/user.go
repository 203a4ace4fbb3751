package models

// User is an account record in the mock backend. Password holds a bcrypt hash
// and is stripped before a user leaves the backend.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Name        string `json:"name,omitempty"`
	MemberSince string `json:"memberSince,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Public returns the user without its password hash.
func (u User) Public() User {
	u.Password = ""
	return u
}

// SavedAddress is an address stored against a user account.
type SavedAddress struct {
	Address
	ID     string `json:"id"`
	UserID string `json:"userId"`
}
