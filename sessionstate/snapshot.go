package sessionstate

import (
	"github.com/jrsteele09/go-session-state/internal/utils"
	"github.com/jrsteele09/go-session-state/tenants"
	"github.com/jrsteele09/go-session-state/users"
)

// Section identifies a top-level area of the UI (e.g. "devices").
type Section string

const redactedToken = "[redacted]"

// Snapshot is a complete copy of the session state. A nil field is absent.
type Snapshot struct {
	User           *users.User       `json:"user"`
	AuthToken      *string           `json:"authToken"`
	AuthTenants    []*tenants.Tenant `json:"authTenants"`
	SelectedTenant *tenants.Tenant   `json:"selectedTenant"`
	CurrentSection *Section          `json:"currentSection"`
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		User:           s.User.Clone(),
		AuthToken:      utils.CopyPtr(s.AuthToken),
		AuthTenants:    tenants.CloneList(s.AuthTenants),
		SelectedTenant: s.SelectedTenant.Clone(),
		CurrentSection: utils.CopyPtr(s.CurrentSection),
	}
}

// Authenticated reports whether both a user and a token are present.
func (s Snapshot) Authenticated() bool {
	return s.User != nil && s.AuthToken != nil
}

// SelectionConsistent reports whether the selected tenant is absent or one of
// the authorized tenants.
func (s Snapshot) SelectionConsistent() bool {
	if s.SelectedTenant == nil {
		return true
	}
	return tenants.Find(s.AuthTenants, s.SelectedTenant.ID) != nil
}

// Redacted returns a copy with the token value masked, for logs and output.
func (s Snapshot) Redacted() Snapshot {
	c := s.clone()
	if c.AuthToken != nil {
		c.AuthToken = utils.Ptr(redactedToken)
	}
	return c
}
