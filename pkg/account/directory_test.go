package account

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name       string
		user       string
		email      string
		credential string
		want       error
	}{
		{"empty name", "", "a@x.com", "abc123", ErrEmptyField},
		{"empty email", "Ana", "", "abc123", ErrEmptyField},
		{"no at sign", "Ana", "ax.com", "abc123", ErrInvalidEmail},
		{"no dot", "Ana", "a@xcom", "abc123", ErrInvalidEmail},
		{"short credential", "Ana", "a@x.com", "ab1", ErrWeakCredential},
		{"no digit", "Ana", "a@x.com", "abcdef", ErrWeakCredential},
	}
	for _, c := range cases {
		d := Directory{}
		if _, err := d.Register(c.user, c.email, c.credential); !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, err, c.want)
		}
		if len(d) != 0 {
			t.Fatalf("%s: rejected registration must not append", c.name)
		}
	}
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	d := Directory{}
	if _, err := d.Register("Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := d.Register("Outra", "A@X.COM", "xyz789"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	d := Directory{}
	if _, err := d.Register("Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	a, err := d.Authenticate("A@x.com", "abc123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if a.Email != "a@x.com" {
		t.Fatalf("stored casing should be preserved, got %q", a.Email)
	}

	if _, err := d.Authenticate("a@x.com", "ABC123"); !errors.Is(err, ErrWrongCredential) {
		t.Fatalf("credential match must be exact, got %v", err)
	}
	if _, err := d.Authenticate("nobody@x.com", "abc123"); !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestResetCredential(t *testing.T) {
	d := Directory{}
	if _, err := d.Register("Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name         string
		email        string
		credential   string
		confirmation string
		want         error
	}{
		{"unknown email", "nobody@x.com", "new456", "new456", ErrEmailNotFound},
		{"weak", "a@x.com", "abc", "abc", ErrWeakCredential},
		{"same as current", "a@x.com", "abc123", "abc123", ErrSameCredential},
		{"mismatch", "a@x.com", "new456", "new457", ErrConfirmationMismatch},
	}
	for _, c := range cases {
		if err := d.ResetCredential(c.email, c.credential, c.confirmation); !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, err, c.want)
		}
	}

	if err := d.ResetCredential("a@x.com", "new456", "new456"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := d.Authenticate("a@x.com", "new456"); err != nil {
		t.Fatalf("authenticate with new credential: %v", err)
	}
}

func TestAccountTupleJSON(t *testing.T) {
	in := &Account{Name: "admin", Email: "admin@sistema.com", Credential: "123456", Admin: true}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `["admin","admin@sistema.com","123456",true]`
	if string(data) != want {
		t.Fatalf("tuple = %s, want %s", data, want)
	}

	out := &Account{}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	if err := json.Unmarshal([]byte(`["a","b","c"]`), out); err == nil {
		t.Fatal("short tuple should be rejected")
	}
}

func TestSeedAdmin(t *testing.T) {
	a := SeedAdmin()
	if a.Email != "admin@sistema.com" || a.Credential != "123456" || !a.Admin {
		t.Fatalf("unexpected seed admin: %+v", a)
	}
}
