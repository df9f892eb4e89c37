package main

import (
	"bytes"
	"strings"
	"testing"

	"contentflow/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORE", "memory")
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatusListsEveryTier(t *testing.T) {
	out, err := runCLI(t, "status")
	require.NoError(t, err)
	for _, name := range []string{"admin", "leadadmin", "superadmin", "published"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "replace+clear")
	assert.Contains(t, out, "merge")
}

func TestForwardCommand(t *testing.T) {
	out, err := runCLI(t, "forward", "admin", "--as", "ops@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "forward admin ok")
	assert.Contains(t, out, "destination: leadadmin")

	_, err = runCLI(t, "forward", "nobody")
	assert.Error(t, err)
}

func TestRejectCommandDisabledTier(t *testing.T) {
	_, err := runCLI(t, "reject", "admin")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	out, err := runCLI(t, "token", "--role", "leadadmin", "--email", "lin@example.com")
	require.NoError(t, err)

	var claims middleware.Claims
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), &claims, func(*jwt.Token) (any, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "leadadmin", claims.Role)
	assert.Equal(t, "lin@example.com", claims.Email)
	assert.NotEmpty(t, claims.UID)

	_, err = runCLI(t, "token", "--role", "janitor")
	assert.Error(t, err)
}

func TestTiersCommand(t *testing.T) {
	out, err := runCLI(t, "tiers")
	require.NoError(t, err)
	assert.Contains(t, out, "leadadmin_")

	out, err = runCLI(t, "tiers", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "[[tiers]]")
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, renderTable(nil, nil, nil))

	out := renderTable([]string{"A", "B"}, [][]string{{"x"}, {"y", "z"}}, []columnAlignment{alignLeft, alignRight})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "z")
}
