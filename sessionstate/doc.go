// Package sessionstate holds the session-scoped state of a multi-tenant
// client: the signed-in user, the auth token, the tenants the user may act
// within, the selected tenant and the active UI section.
//
// A Store is constructed explicitly and handed to the components that need
// it. All values are copied on the way in and on the way out, so the Store is
// the only owner of its state. Mutations are serialized; readers and
// observers only ever see complete states.
//
// Compatibility note: LogOut clears the user, token, tenants and section but
// keeps the selected tenant, so a consumer that signs in again sees the
// previous selection. Use Reset to clear everything.
package sessionstate
