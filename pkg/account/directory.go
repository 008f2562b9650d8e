package account

import (
	"errors"
	"strings"
)

var (
	ErrEmptyField           = errors.New("account: field cannot be empty")
	ErrInvalidEmail         = errors.New("account: malformed email")
	ErrDuplicateEmail       = errors.New("account: email already registered")
	ErrWeakCredential       = errors.New("account: credential needs at least 6 characters and one digit")
	ErrEmailNotFound        = errors.New("account: email not registered")
	ErrWrongCredential      = errors.New("account: wrong credential")
	ErrSameCredential       = errors.New("account: new credential equals the current one")
	ErrConfirmationMismatch = errors.New("account: confirmation does not match")
)

// Directory is the ordered collection of accounts. Email is the key:
// lookups are case-insensitive, stored casing is preserved.
type Directory []*Account

// Find returns the account for the email, or nil.
func (d Directory) Find(email string) *Account {
	for _, a := range d {
		if strings.EqualFold(a.Email, email) {
			return a
		}
	}
	return nil
}

// Register validates and appends a new non-admin account.
func (d *Directory) Register(name, email, credential string) (*Account, error) {
	if name == "" || email == "" {
		return nil, ErrEmptyField
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, ErrInvalidEmail
	}
	if d.Find(email) != nil {
		return nil, ErrDuplicateEmail
	}
	if !strongCredential(credential) {
		return nil, ErrWeakCredential
	}
	a := &Account{Name: name, Email: email, Credential: credential}
	*d = append(*d, a)
	return a, nil
}

// Authenticate matches the email case-insensitively and the credential
// exactly.
func (d Directory) Authenticate(email, credential string) (*Account, error) {
	a := d.Find(email)
	if a == nil {
		return nil, ErrEmailNotFound
	}
	if a.Credential != credential {
		return nil, ErrWrongCredential
	}
	return a, nil
}

// ResetCredential replaces the stored credential after validating strength,
// difference from the old value, and the confirmation.
func (d Directory) ResetCredential(email, newCredential, confirmation string) error {
	a := d.Find(email)
	if a == nil {
		return ErrEmailNotFound
	}
	if !strongCredential(newCredential) {
		return ErrWeakCredential
	}
	if newCredential == a.Credential {
		return ErrSameCredential
	}
	if newCredential != confirmation {
		return ErrConfirmationMismatch
	}
	a.Credential = newCredential
	return nil
}

func strongCredential(credential string) bool {
	if len(credential) < 6 {
		return false
	}
	return strings.ContainsAny(credential, "0123456789")
}
