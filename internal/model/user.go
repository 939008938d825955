package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is a credential record. Identities are fixed at process start.
type Identity struct {
	ID          string
	Username    string
	Password    string
	Role        Role
	Email       string
	DisplayName string
	Avatar      string
	Bio         string
}

// User is the session view of an identity: every field except the password.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

func (i Identity) User() User {
	return User{
		ID:          i.ID,
		Username:    i.Username,
		Email:       i.Email,
		Role:        i.Role,
		DisplayName: i.DisplayName,
		Avatar:      i.Avatar,
		Bio:         i.Bio,
	}
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanEdit reports whether u may edit content written by authorID.
func (u User) CanEdit(authorID string) bool {
	return u.ID == authorID || u.IsAdmin()
}
