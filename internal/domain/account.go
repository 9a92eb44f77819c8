package domain

import (
	"fmt"
	"strings"
)

// Account is a named project/client namespace. Every persisted resource
// (log book, settings) is partitioned by account ID.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks that the account carries a usable name.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name must not be blank")
	}
	return nil
}

// DisplayName returns the account name, falling back to a truncated ID
// when the name is empty.
func (a *Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if len(a.ID) >= 8 {
		return a.ID[:8]
	}
	return a.ID
}
