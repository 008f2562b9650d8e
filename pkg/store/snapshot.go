package store

import (
	"encoding/json"
	"strings"

	"tableflip.dev/studyon/pkg/account"
	"tableflip.dev/studyon/pkg/profile"
	"tableflip.dev/studyon/pkg/support"
)

// Snapshot is the single authoritative in-memory state: every account, every
// support ticket, and every profile keyed by lower-cased email. The whole
// snapshot is the unit of persistence.
type Snapshot struct {
	Accounts account.Directory
	Tickets  support.Queue
	Profiles map[string]*profile.Profile
}

// document is the persisted shape of the snapshot.
type document struct {
	Usuarios      account.Directory           `json:"usuarios"`
	Solicitacoes  support.Queue               `json:"solicitacoes"`
	UsuariosDados map[string]*profile.Profile `json:"usuarios_dados"`
}

// DefaultSnapshot returns the state a fresh or unreadable store starts from:
// the seed administrator, no tickets, no profiles.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Accounts: account.Directory{account.SeedAdmin()},
		Tickets:  support.Queue{},
		Profiles: map[string]*profile.Profile{},
	}
}

// Decode parses a persisted document. A malformed document is discarded and
// replaced by the default; each missing top-level key is initialized to its
// default independently.
func Decode(data []byte) *Snapshot {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return DefaultSnapshot()
	}
	s := &Snapshot{
		Accounts: doc.Usuarios,
		Tickets:  doc.Solicitacoes,
		Profiles: map[string]*profile.Profile{},
	}
	if s.Accounts == nil {
		s.Accounts = account.Directory{account.SeedAdmin()}
	}
	if s.Tickets == nil {
		s.Tickets = support.Queue{}
	}
	for email, p := range doc.UsuariosDados {
		if p == nil {
			continue
		}
		s.Profiles[strings.ToLower(email)] = p
	}
	return s
}

// Encode serializes the snapshot to its persisted form.
func (s *Snapshot) Encode() ([]byte, error) {
	doc := document{
		Usuarios:      s.Accounts,
		Solicitacoes:  s.Tickets,
		UsuariosDados: s.Profiles,
	}
	if doc.Usuarios == nil {
		doc.Usuarios = account.Directory{}
	}
	if doc.Solicitacoes == nil {
		doc.Solicitacoes = support.Queue{}
	}
	if doc.UsuariosDados == nil {
		doc.UsuariosDados = map[string]*profile.Profile{}
	}
	return json.MarshalIndent(doc, "", "    ")
}

// Profile returns the profile for the email, creating a default one on first
// access. Emails are normalized to lower case for the lookup.
func (s *Snapshot) Profile(email string) *profile.Profile {
	key := strings.ToLower(email)
	p, ok := s.Profiles[key]
	if !ok {
		p = profile.New()
		s.Profiles[key] = p
	}
	return p
}
