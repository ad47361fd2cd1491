// Copyright (c) 2026 Starting Out OK. All rights reserved.

// Package sec provides cryptographic primitives and admin session tokens.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// admin layer via the AdminTokenService.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the payload embedded inside an admin session JWT.
//
// The site has a single administrative identity, so the claims carry no user
// ID beyond the fixed subject. Verification happens entirely from the token;
// no store lookup is needed per request.
type AdminClaims struct {
	jwt.RegisteredClaims
}

// AdminSubject is the fixed 'sub' claim for the administrative identity.
const AdminSubject = "admin"

// AdminTokenService handles generation and verification of admin session
// tokens using HS256 with a shared secret.
type AdminTokenService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewAdminTokenService creates a new AdminTokenService.
func NewAdminTokenService(secret, issuer, audience string) (*AdminTokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: session secret must not be empty")
	}

	return &AdminTokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}, nil
}

// GenerateSessionToken creates a new signed admin session token.
func (service *AdminTokenService) GenerateSessionToken(timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminSubject,
			Issuer:    service.issuer,
			Audience:  jwt.ClaimStrings{service.audience},
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// VerifySessionToken checks the signature, issuer, audience, and validity of
// an admin session token string.
func (service *AdminTokenService) VerifySessionToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	},
		jwt.WithIssuer(service.issuer),
		jwt.WithAudience(service.audience),
	)

	if err != nil {
		return nil, fmt.Errorf("sec: invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid session token claims")
	}

	if claims.Subject != AdminSubject {
		return nil, fmt.Errorf("sec: unexpected token subject")
	}

	return claims, nil
}
