package toml

import "fmt"

const currentSchemaVersion = 1

// fileSchema is the accounts file. Accounts stays nil when the file has no
// accounts key, which the repository reports as a missing account list.
type fileSchema struct {
	Version  int             `toml:"version"`
	User     *userSchema     `toml:"user,omitempty"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type userSchema struct {
	ID    *string `toml:"id,omitempty"`
	Name  *string `toml:"name,omitempty"`
	Email *string `toml:"email,omitempty"`
}
