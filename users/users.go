package users

import "strings"

// RoleType represents a user role either at system or tenant level
type RoleType string

const (
	// System-level roles
	RoleSuperAdmin    RoleType = "super_admin"    // Can act within every tenant
	RoleSystemAuditor RoleType = "system_auditor" // Read access across tenants

	// Tenant-level roles
	RoleTenantAdmin  RoleType = "tenant_admin"
	RoleTenantUser   RoleType = "tenant_user"
	RoleTenantViewer RoleType = "tenant_viewer"
)

// TenantMembership represents a user's membership and roles within a specific tenant
type TenantMembership struct {
	TenantID string     `json:"tenant_id"`
	Roles    []RoleType `json:"roles,omitempty"`
}

// User is the authenticated principal held by the session.
type User struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	SystemRoles []RoleType         `json:"system_roles,omitempty"`
	Tenants     []TenantMembership `json:"tenants,omitempty"`
}

// Clone returns a deep copy of u. A nil user clones to nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.SystemRoles != nil {
		c.SystemRoles = append([]RoleType(nil), u.SystemRoles...)
	}
	if u.Tenants != nil {
		c.Tenants = make([]TenantMembership, len(u.Tenants))
		for i, m := range u.Tenants {
			c.Tenants[i] = TenantMembership{TenantID: m.TenantID}
			if m.Roles != nil {
				c.Tenants[i].Roles = append([]RoleType(nil), m.Roles...)
			}
		}
	}
	return &c
}

// DisplayName prefers the full name, then the username, then the email.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

func (u *User) HasTenant(tenantID string) bool {
	if tenantID == "" {
		return true
	}
	return u.TenantMembership(tenantID) != nil
}

// IsSuperAdmin returns true if the user has super admin privileges
func (u *User) IsSuperAdmin() bool {
	for _, role := range u.SystemRoles {
		if role == RoleSuperAdmin {
			return true
		}
	}
	return false
}

// TenantMembership returns the user's membership for a specific tenant
func (u *User) TenantMembership(tenantID string) *TenantMembership {
	for i := range u.Tenants {
		if u.Tenants[i].TenantID == tenantID {
			return &u.Tenants[i]
		}
	}
	return nil
}

// RolesForTenant returns the user's roles within a specific tenant
func (u *User) RolesForTenant(tenantID string) []RoleType {
	if membership := u.TenantMembership(tenantID); membership != nil {
		return membership.Roles
	}
	return nil
}

// HasTenantRole checks if the user has a specific role within a tenant
func (u *User) HasTenantRole(tenantID string, role RoleType) bool {
	for _, r := range u.RolesForTenant(tenantID) {
		if r == role {
			return true
		}
	}
	return false
}
