package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExpired(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := Session{Token: "tok", Expires: expiry}

	assert.False(t, session.Expired(expiry.Add(-time.Second)))
	assert.False(t, session.Expired(expiry), "expiry instant itself is still live")
	assert.True(t, session.Expired(expiry.Add(time.Second)))
}

func TestAdminUserJSONHidesPasswordHash(t *testing.T) {
	user := AdminUser{
		ID:           "u1",
		Email:        "admin@dumurianews.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$10$")
}
