package auth

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-session-state/tenants"
	"github.com/jrsteele09/go-session-state/users"
	"github.com/stretchr/testify/require"
)

func TestTenantsFromClaims(t *testing.T) {
	claims := jwtlib.MapClaims{
		"tenants": []any{
			"t1",
			map[string]any{"id": "t1", "roles": []any{"tenant_user"}},
			map[string]any{"name": "no id"},
			42,
			map[string]any{"id": "t2", "roles": []any{"tenant_admin", "tenant_admin"}},
		},
	}

	list, roles := tenantsFromClaims(claims)
	require.Equal(t, []*tenants.Tenant{{ID: "t1"}, {ID: "t2"}}, list)
	require.Equal(t, []users.RoleType{users.RoleTenantUser}, roles["t1"])
	require.Equal(t, []users.RoleType{users.RoleTenantAdmin}, roles["t2"])
}

func TestTenantsFromClaimsMissing(t *testing.T) {
	list, roles := tenantsFromClaims(jwtlib.MapClaims{})
	require.NotNil(t, list)
	require.Empty(t, list)
	require.Empty(t, roles)
}

func TestUserFromClaims(t *testing.T) {
	claims := jwtlib.MapClaims{
		"sub":          "user-1",
		"system_roles": []any{"super_admin"},
		"tenant":       "t1",
		"roles":        []any{"tenant_admin"},
	}
	list := []*tenants.Tenant{{ID: "t1"}, {ID: "t2"}}

	u := userFromClaims(claims, list, map[string][]users.RoleType{"t1": {users.RoleTenantUser}})
	require.Equal(t, "user-1", u.ID)
	require.True(t, u.IsSuperAdmin())
	require.Equal(t, []users.RoleType{users.RoleTenantUser, users.RoleTenantAdmin}, u.RolesForTenant("t1"))
	require.Nil(t, u.RolesForTenant("t2"))
	require.True(t, u.HasTenant("t2"))
}
