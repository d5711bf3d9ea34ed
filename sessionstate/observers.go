package sessionstate

import (
	"sync"

	"github.com/google/uuid"
)

// Mutation names the store operation that produced an Event.
type Mutation string

const (
	MutationUser           Mutation = "user"
	MutationAuthToken      Mutation = "authToken"
	MutationAuthTenants    Mutation = "authTenants"
	MutationSelectedTenant Mutation = "selectedTenant"
	MutationCurrentSection Mutation = "currentSection"
	MutationLogOut         Mutation = "logOut"
	MutationSignIn         Mutation = "signIn"
	MutationReset          Mutation = "reset"
)

// Event is delivered to observers once per committed mutation.
type Event struct {
	ID       string
	Mutation Mutation
	State    Snapshot // state as committed by this mutation
}

// Observer is called synchronously before the mutating call returns.
type Observer func(Event)

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	ID    string
	store *Store
}

// Unsubscribe stops delivery to the observer. Calling it more than once is a no-op.
func (s Subscription) Unsubscribe() {
	if s.store == nil {
		return
	}
	s.store.observers.remove(s.ID)
}

type observerRegistry struct {
	lock      sync.RWMutex
	observers map[string]Observer
	order     []string
}

func newObserverRegistry() *observerRegistry {
	return &observerRegistry{observers: make(map[string]Observer)}
}

func (r *observerRegistry) add(o Observer) string {
	r.lock.Lock()
	defer r.lock.Unlock()

	id := uuid.New().String()
	r.observers[id] = o
	r.order = append(r.order, id)
	return id
}

func (r *observerRegistry) remove(id string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.observers[id]; !ok {
		return
	}
	delete(r.observers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// current returns the observers in subscription order.
func (r *observerRegistry) current() []Observer {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]Observer, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.observers[id])
	}
	return list
}

func (r *observerRegistry) count() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.observers)
}
