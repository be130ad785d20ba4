package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("Admin").Valid())
}

func TestAccountTypeValid(t *testing.T) {
	assert.True(t, AccountClient.Valid())
	assert.True(t, AccountProfessional.Valid())
	assert.False(t, AccountType("staff").Valid())
}

func TestUserJSONHidesSecrets(t *testing.T) {
	u := User{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "hashed",
		TokenIdentifier: "tok-123",
		AccountType:     AccountProfessional,
		Role:            RoleAdmin,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hashed")
	assert.NotContains(t, string(data), "tok-123")
	assert.Contains(t, string(data), "ana@example.com")
}
