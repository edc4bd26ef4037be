package domain

type AccountID string

type Account struct {
	ID   AccountID
	Name string
}

// HasAccountNamed reports whether accounts contains an entry with the given name.
// Matching is by name only; two accounts sharing a name are indistinguishable.
func HasAccountNamed(accounts []Account, name string) bool {
	for _, account := range accounts {
		if account.Name == name {
			return true
		}
	}

	return false
}
