package service

import "github.com/BloggingApp/story-service/internal/model"

// CredentialStore is the fixed list of accounts that may log in.
type CredentialStore struct {
	identities []model.Identity
}

func NewCredentialStore(identities ...model.Identity) *CredentialStore {
	list := make([]model.Identity, len(identities))
	copy(list, identities)
	return &CredentialStore{
		identities: list,
	}
}

// Match is an exact, case-sensitive comparison on both fields. Passwords are plaintext.
func (c *CredentialStore) Match(username string, password string) (model.Identity, bool) {
	for _, identity := range c.identities {
		if identity.Username == username && identity.Password == password {
			return identity, true
		}
	}
	return model.Identity{}, false
}

func (c *CredentialStore) FindByID(id string) (model.Identity, bool) {
	for _, identity := range c.identities {
		if identity.ID == id {
			return identity, true
		}
	}
	return model.Identity{}, false
}

func (c *CredentialStore) Exists(id string) bool {
	_, ok := c.FindByID(id)
	return ok
}

func BlogCredentials() *CredentialStore {
	return NewCredentialStore(
		model.Identity{ID: "1", Username: "admin", Password: "admin123", Role: model.RoleAdmin},
		model.Identity{ID: "2", Username: "user", Password: "user123", Role: model.RoleUser},
	)
}

func MediumCredentials() *CredentialStore {
	return NewCredentialStore(
		model.Identity{
			ID:       "1",
			Username: "admin",
			Email:    "admin@medium.com",
			Password: "admin123",
			Role:     model.RoleAdmin,
			Avatar:   "👨‍💼",
			Bio:      "Platform administrator and content curator",
		},
		model.Identity{
			ID:       "2",
			Username: "writer",
			Email:    "writer@medium.com",
			Password: "writer123",
			Role:     model.RoleUser,
			Avatar:   "✍️",
			Bio:      "Passionate writer sharing stories and insights",
		},
	)
}
