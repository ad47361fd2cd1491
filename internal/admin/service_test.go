// Copyright (c) 2026 Starting Out OK. All rights reserved.

package admin_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-farmer/startingOutOK/internal/admin"
	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/internal/platform/constants"
	"github.com/mickey-farmer/startingOutOK/internal/platform/sec"
)

func newTestAdminService(t *testing.T) (*admin.Service, *sec.AdminTokenService) {
	t.Helper()

	tokens, err := sec.NewAdminTokenService(
		"test-secret-key-used-only-in-tests",
		constants.AdminIssuer,
		constants.AdminAudience,
	)
	require.NoError(t, err)

	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return admin.NewService(tokens, hash, logger), tokens
}

/*
TestService_Login verifies the issued session verifies as an admin token
with the expected lifetime.
*/
func TestService_Login(t *testing.T) {
	service, tokens := newTestAdminService(t)

	session, err := service.Login("correct horse battery staple")
	require.NoError(t, err)
	require.NotNil(t, session)

	claims, err := tokens.VerifySessionToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, sec.AdminSubject, claims.Subject)

	assert.WithinDuration(t, time.Now().Add(constants.AdminSessionTTL), session.ExpiresAt, time.Minute)
}

/*
TestService_Login_WrongPassword verifies a wrong password is rejected as
unauthorized.
*/
func TestService_Login_WrongPassword(t *testing.T) {
	service, _ := newTestAdminService(t)

	_, err := service.Login("guess")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}
