package domain

// User is the identity of the person running the panel. A nil field was absent
// from the identity response.
type User struct {
	ID    *string `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (u User) IsZero() bool {
	return u.ID == nil && u.Name == nil && u.Email == nil
}

// DisplayName prefers the name, then the email, then the id.
func (u User) DisplayName() string {
	for _, field := range []*string{u.Name, u.Email, u.ID} {
		if field != nil && *field != "" {
			return *field
		}
	}

	return ""
}
