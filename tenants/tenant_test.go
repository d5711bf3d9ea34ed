package tenants_test

import (
	"testing"

	"github.com/jrsteele09/go-session-state/tenants"
	"github.com/stretchr/testify/require"
)

func TestCloneList(t *testing.T) {
	require.Nil(t, tenants.CloneList(nil))

	empty := tenants.CloneList([]*tenants.Tenant{})
	require.NotNil(t, empty)
	require.Empty(t, empty)

	orig := []*tenants.Tenant{{ID: "t1", Name: "One"}, nil}
	c := tenants.CloneList(orig)
	require.Equal(t, orig, c)

	c[0].Name = "Changed"
	require.Equal(t, "One", orig[0].Name)
}

func TestFind(t *testing.T) {
	list := []*tenants.Tenant{nil, {ID: "t1"}, {ID: "t2"}}

	require.Equal(t, "t2", tenants.Find(list, "t2").ID)
	require.Nil(t, tenants.Find(list, "t3"))
	require.Nil(t, tenants.Find(nil, "t1"))
}
