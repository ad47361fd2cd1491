// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package admin implements single-admin authentication for the content
editor.

There is exactly one admin identity. Login compares the submitted password
against a bcrypt hash from configuration and issues an HS256 session token
in an httpOnly cookie; no user table exists anywhere.
*/
package admin

import (
	"log/slog"
	"time"

	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/internal/platform/constants"
	"github.com/mickey-farmer/startingOutOK/internal/platform/sec"
)

// # Service Layer

// Service handles the admin session lifecycle.
type Service struct {
	tokens       *sec.AdminTokenService
	passwordHash string
	logger       *slog.Logger
}

// NewService constructs a new [Service]. passwordHash is the bcrypt hash
// of the admin password from configuration.
func NewService(tokens *sec.AdminTokenService, passwordHash string, logger *slog.Logger) *Service {
	return &Service{
		tokens:       tokens,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Session is the issued admin session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

/*
Login verifies the admin password and issues a session token.

Returns:
  - *Session: Signed token and its expiry
  - error: apperr.Unauthorized on a wrong password
*/
func (service *Service) Login(password string) (*Session, error) {
	if !sec.CheckPasswordHash(password, service.passwordHash) {
		service.logger.Warn("admin login rejected")
		return nil, apperr.Unauthorized("Invalid password")
	}

	token, err := service.tokens.GenerateSessionToken(constants.AdminSessionTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("admin session issued")
	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(constants.AdminSessionTTL),
	}, nil
}
