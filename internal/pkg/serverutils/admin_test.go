// FILE: internal/pkg/serverutils/admin_test.go
package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAllowlist(t *testing.T) {
	allowlist := NewAdminAllowlist(" Owner@TrashPanda.com , ops@trashpanda.com,, ")

	assert.True(t, allowlist.IsAdmin("owner@trashpanda.com"))
	assert.True(t, allowlist.IsAdmin("OWNER@trashpanda.COM"))
	assert.True(t, allowlist.IsAdmin(" ops@trashpanda.com "))

	assert.False(t, allowlist.IsAdmin("customer@example.com"))
	assert.False(t, allowlist.IsAdmin(""))
}

func TestAdminAllowlistEmpty(t *testing.T) {
	allowlist := NewAdminAllowlist("")
	assert.False(t, allowlist.IsAdmin("anyone@example.com"))
}
