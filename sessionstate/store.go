package sessionstate

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-session-state/internal/errors"
	"github.com/jrsteele09/go-session-state/internal/utils"
	"github.com/jrsteele09/go-session-state/tenants"
	"github.com/jrsteele09/go-session-state/users"
	"github.com/rs/zerolog/log"
)

// Store is the single source of truth for session-scoped state.
type Store struct {
	mu        sync.RWMutex
	state     Snapshot
	observers *observerRegistry
}

// New creates a Store with every field absent.
func New() *Store {
	return &Store{observers: newObserverRegistry()}
}

// SetUser replaces the stored user. nil clears it.
func (s *Store) SetUser(user *users.User) {
	user = user.Clone()
	s.update(MutationUser, func(st *Snapshot) error {
		st.User = user
		return nil
	})
}

// SetAuthToken replaces the stored token. nil clears it.
func (s *Store) SetAuthToken(token *string) {
	token = utils.CopyPtr(token)
	s.update(MutationAuthToken, func(st *Snapshot) error {
		st.AuthToken = token
		return nil
	})
}

// SetAuthTenants replaces the authorized tenant list. The selected tenant is
// not checked against the new list.
func (s *Store) SetAuthTenants(list []*tenants.Tenant) {
	list = tenants.CloneList(list)
	s.update(MutationAuthTenants, func(st *Snapshot) error {
		st.AuthTenants = list
		return nil
	})
}

// SetSelectedTenant replaces the selection without checking membership in the
// authorized tenants. See SelectAuthorizedTenant for the checked variant.
func (s *Store) SetSelectedTenant(tenant *tenants.Tenant) {
	tenant = tenant.Clone()
	s.update(MutationSelectedTenant, func(st *Snapshot) error {
		st.SelectedTenant = tenant
		return nil
	})
}

func (s *Store) SetCurrentSection(section *Section) {
	section = utils.CopyPtr(section)
	s.update(MutationCurrentSection, func(st *Snapshot) error {
		st.CurrentSection = section
		return nil
	})
}

// LogOut clears the user, token, authorized tenants and current section in a
// single step. The selected tenant is kept.
func (s *Store) LogOut() {
	s.update(MutationLogOut, func(st *Snapshot) error {
		st.User = nil
		st.AuthToken = nil
		st.AuthTenants = nil
		st.CurrentSection = nil
		return nil
	})
}

// Reset clears every field, including the selected tenant.
func (s *Store) Reset() {
	s.update(MutationReset, func(st *Snapshot) error {
		*st = Snapshot{}
		return nil
	})
}

// SignIn stores the user, token and authorized tenants together, so observers
// never see a user without its token. The selected tenant is left as is.
func (s *Store) SignIn(user *users.User, token *string, list []*tenants.Tenant) {
	user = user.Clone()
	token = utils.CopyPtr(token)
	list = tenants.CloneList(list)
	s.update(MutationSignIn, func(st *Snapshot) error {
		st.User = user
		st.AuthToken = token
		st.AuthTenants = list
		return nil
	})
}

// SelectAuthorizedTenant selects the authorized tenant with the given ID. The
// state is unchanged when the tenant is not in the authorized list.
func (s *Store) SelectAuthorizedTenant(tenantID string) error {
	return s.update(MutationSelectedTenant, func(st *Snapshot) error {
		tenant := tenants.Find(st.AuthTenants, tenantID)
		if tenant == nil {
			return errors.Wrapf(errors.ErrUnauthorizedTenant, "select tenant %q", tenantID)
		}
		st.SelectedTenant = tenant.Clone()
		return nil
	})
}

func (s *Store) User() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User.Clone()
}

func (s *Store) AuthToken() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.CopyPtr(s.state.AuthToken)
}

func (s *Store) AuthTenants() []*tenants.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tenants.CloneList(s.state.AuthTenants)
}

func (s *Store) SelectedTenant() *tenants.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedTenant.Clone()
}

func (s *Store) CurrentSection() *Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.CopyPtr(s.state.CurrentSection)
}

// Snapshot returns a consistent copy of all fields.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// SelectionConsistent reports whether the selected tenant is absent or one of
// the authorized tenants.
func (s *Store) SelectionConsistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectionConsistent()
}

// Subscribe registers an observer for every subsequent mutation.
func (s *Store) Subscribe(o Observer) Subscription {
	return Subscription{ID: s.observers.add(o), store: s}
}

// update applies fn under the write lock and, if it succeeds, notifies the
// observers with the committed state after the lock is released. Observers
// may therefore read or mutate the store.
func (s *Store) update(m Mutation, fn func(st *Snapshot) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		log.Debug().Err(err).Str("mutation", string(m)).Msg("Session state mutation rejected")
		return err
	}
	committed := s.state.clone()
	s.mu.Unlock()

	log.Debug().
		Str("mutation", string(m)).
		Bool("authenticated", committed.Authenticated()).
		Int("observers", s.observers.count()).
		Msg("Session state updated")

	ev := Event{ID: uuid.New().String(), Mutation: m}
	for _, o := range s.observers.current() {
		ev.State = committed.clone()
		o(ev)
	}
	return nil
}
