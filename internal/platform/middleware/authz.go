// Copyright (c) 2026 Starting Out OK. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/mickey-farmer/startingOutOK/internal/platform/apperr"
	"github.com/mickey-farmer/startingOutOK/internal/platform/constants"
	"github.com/mickey-farmer/startingOutOK/internal/platform/ctxutil"
	"github.com/mickey-farmer/startingOutOK/internal/platform/respond"
	"github.com/mickey-farmer/startingOutOK/internal/platform/sec"
)

// SessionVerifier defines the interface needed to verify admin sessions in middleware.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the admin
// service implementation, allowing us to easily inject mocks during unit testing.
type SessionVerifier interface {
	VerifySessionToken(tokenStr string) (*sec.AdminClaims, error)
}

// Authenticate extracts and verifies the admin session cookie.
//
// # Flow
//  1. Check for the admin_session cookie.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [SessionVerifier].
//  4. Inject [*sec.AdminClaims] into the request context for downstream use.
//
// An invalid or expired cookie does not abort the request here: public pages
// stay reachable with a stale cookie. Protected routes enforce the session
// via [RequireAdmin].
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.AdminSessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifySessionToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests that do not carry a valid admin session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAdmin(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Admin session required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
