package auth

import (
	"slices"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-session-state/internal/utils"
	"github.com/jrsteele09/go-session-state/tenants"
	"github.com/jrsteele09/go-session-state/users"
)

// Claim names read from access and ID tokens.
const (
	claimSubject     = "sub"
	claimEmail       = "email"
	claimUsername    = "preferred_username"
	claimGivenName   = "given_name"
	claimFamilyName  = "family_name"
	claimTenant      = "tenant"
	claimTenants     = "tenants"
	claimRoles       = "roles"
	claimSystemRoles = "system_roles"
)

// userFromClaims builds the principal. Roles in the "roles" claim apply to the
// token's "tenant"; per-tenant roles inside the "tenants" claim are merged in.
func userFromClaims(claims jwtlib.MapClaims, authTenants []*tenants.Tenant, tenantRoles map[string][]users.RoleType) *users.User {
	user := &users.User{
		ID:          utils.StringFrom(claims, claimSubject),
		Email:       utils.StringFrom(claims, claimEmail),
		Username:    utils.StringFrom(claims, claimUsername),
		FirstName:   utils.StringFrom(claims, claimGivenName),
		LastName:    utils.StringFrom(claims, claimFamilyName),
		SystemRoles: rolesFrom(claims[claimSystemRoles]),
	}

	if tenantID := utils.StringFrom(claims, claimTenant); tenantID != "" {
		tenantRoles[tenantID] = mergeRoles(tenantRoles[tenantID], rolesFrom(claims[claimRoles]))
	}

	for _, t := range authTenants {
		user.Tenants = append(user.Tenants, users.TenantMembership{
			TenantID: t.ID,
			Roles:    tenantRoles[t.ID],
		})
	}
	return user
}

// overlayIdentity copies identity claims from an ID token onto user where the
// access token left them empty.
func overlayIdentity(user *users.User, idClaims jwtlib.MapClaims) {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = utils.StringFrom(idClaims, key)
		}
	}
	fill(&user.ID, claimSubject)
	fill(&user.Email, claimEmail)
	fill(&user.Username, claimUsername)
	fill(&user.FirstName, claimGivenName)
	fill(&user.LastName, claimFamilyName)
}

// tenantsFromClaims reads the "tenants" claim. Entries are either tenant IDs
// or objects with id, name, domain and roles. A missing claim yields an empty
// list: the principal is authenticated but authorized for no tenant.
func tenantsFromClaims(claims jwtlib.MapClaims) ([]*tenants.Tenant, map[string][]users.RoleType) {
	list := make([]*tenants.Tenant, 0)
	roles := make(map[string][]users.RoleType)

	raw, _ := claims[claimTenants].([]any)
	for _, entry := range raw {
		var t *tenants.Tenant
		switch v := entry.(type) {
		case string:
			t = &tenants.Tenant{ID: v}
		case map[string]any:
			t = &tenants.Tenant{
				ID:     utils.StringFrom(v, "id"),
				Name:   utils.StringFrom(v, "name"),
				Domain: utils.StringFrom(v, "domain"),
			}
			if r := rolesFrom(v[claimRoles]); len(r) > 0 {
				roles[t.ID] = mergeRoles(roles[t.ID], r)
			}
		}
		if t == nil || t.ID == "" || tenants.Find(list, t.ID) != nil {
			continue
		}
		list = append(list, t)
	}
	return list, roles
}

func rolesFrom(v any) []users.RoleType {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	var roles []users.RoleType
	for _, r := range utils.ToStringSlice(raw) {
		roles = append(roles, users.RoleType(r))
	}
	return roles
}

func mergeRoles(dst, src []users.RoleType) []users.RoleType {
	for _, r := range src {
		if !slices.Contains(dst, r) {
			dst = append(dst, r)
		}
	}
	return dst
}
