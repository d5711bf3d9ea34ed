package tenants

// Tenant is a named scope of data and access the application acts within.
type Tenant struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// Clone returns a copy of t, or nil when t is nil.
func (t *Tenant) Clone() *Tenant {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// CloneList copies list and each tenant in it. nil stays nil and an empty
// list stays empty, so absence is preserved.
func CloneList(list []*Tenant) []*Tenant {
	if list == nil {
		return nil
	}
	c := make([]*Tenant, len(list))
	for i, t := range list {
		c[i] = t.Clone()
	}
	return c
}

// Find returns the tenant with the given ID from list, or nil.
func Find(list []*Tenant, tenantID string) *Tenant {
	for _, t := range list {
		if t != nil && t.ID == tenantID {
			return t
		}
	}
	return nil
}
