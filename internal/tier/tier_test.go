package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChainIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDestination(t *testing.T) {
	c := Default()

	ns, err := c.Destination("admin")
	require.NoError(t, err)
	assert.Equal(t, "leadadmin", ns.Name)
	assert.Equal(t, "leadadmin_", ns.Prefix)

	ns, err = c.Destination("superadmin")
	require.NoError(t, err)
	assert.Equal(t, PublishedName, ns.Name)
	assert.Equal(t, "", ns.Prefix)

	_, err = c.Destination("editor")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestAllows(t *testing.T) {
	c := Default()

	tests := []struct {
		role, tier string
		want       bool
	}{
		{"admin", "admin", true},
		{"admin", "leadadmin", false},
		{"leadadmin", "admin", true},
		{"leadadmin", "leadadmin", true},
		{"leadadmin", "superadmin", false},
		{"superadmin", "superadmin", true},
		{"guest", "admin", false},
		{"superadmin", "nope", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Allows(tt.role, tt.tier), "%s on %s", tt.role, tt.tier)
	}
}

func TestValidateRejectsBadChains(t *testing.T) {
	dup := Default()
	dup.Tiers[1].Prefix = dup.Tiers[0].Prefix
	assert.Error(t, dup.Validate())

	mode := Default()
	mode.Tiers[0].Forward.Mode = "copy"
	assert.Error(t, mode.Validate())

	notify := Default()
	notify.Tiers[1].Reject.NotifyRole = "editor"
	assert.Error(t, notify.Validate())

	reserved := Default()
	reserved.Tiers[0].Name = PublishedName
	assert.Error(t, reserved.Validate())

	assert.Error(t, Chain{}.Validate())
}

func TestValidateReservesRouteNames(t *testing.T) {
	for _, name := range []string{PublishedName, AliasName} {
		c := Default()
		c.Tiers[2].Name = name
		err := c.Validate()
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "reserved")
	}
}

func TestOrderPutsPublishedLast(t *testing.T) {
	c := Default()
	assert.Less(t, c.Order(c.Tiers[0].Namespace()), c.Order(c.Tiers[2].Namespace()))
	assert.Equal(t, len(c.Tiers), c.Order(c.Published()))
}
