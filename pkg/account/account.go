// Package account implements the user directory: identity, credential and
// role records plus the registration and authentication rules.
package account

import (
	"encoding/json"
	"errors"
)

// Account is one user record. It serializes as the 4-tuple
// [name, email, credential, isAdmin] to match the persisted document.
type Account struct {
	Name       string
	Email      string
	Credential string
	Admin      bool
}

// SeedAdmin is the administrator account installed into an empty or
// malformed store.
func SeedAdmin() *Account {
	return &Account{
		Name:       "admin",
		Email:      "admin@sistema.com",
		Credential: "123456",
		Admin:      true,
	}
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Name, a.Email, a.Credential, a.Admin})
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 4 {
		return errors.New("account: record is not a 4-tuple")
	}
	if err := json.Unmarshal(tuple[0], &a.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[1], &a.Email); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[2], &a.Credential); err != nil {
		return err
	}
	return json.Unmarshal(tuple[3], &a.Admin)
}
