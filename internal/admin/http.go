// Copyright (c) 2026 Starting Out OK. All rights reserved.

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mickey-farmer/startingOutOK/internal/platform/constants"
	requestutil "github.com/mickey-farmer/startingOutOK/internal/platform/request"
	"github.com/mickey-farmer/startingOutOK/internal/platform/respond"
	"github.com/mickey-farmer/startingOutOK/internal/platform/validate"
)

// Handler implements the HTTP layer for admin sessions.
type Handler struct {
	adminService *Service
	secureCookie bool
}

// NewHandler constructs a new admin [Handler]. secureCookie should be
// false only in local development over plain HTTP.
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{adminService: service, secureCookie: secureCookie}
}

// Routes returns a [chi.Router] configured with the session endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)

	return router
}

// loginRequest defines the expected JSON payload for login.
type loginRequest struct {
	Password string `json:"password"`
}

/*
POST /api/v1/admin/login.

Description: Verifies the admin password and sets the httpOnly session
cookie.

Request:
  - body: loginRequest

Response:
  - 204: Session cookie set
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if v.Required("password", input.Password); v.HasErrors() {
		respond.Error(writer, request, v.Err())
		return
	}

	session, err := handler.adminService.Login(input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AdminSessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}

/*
POST /api/v1/admin/logout.

Description: Clears the session cookie. Tokens are stateless, so there is
nothing server-side to revoke; they simply stop being presented.

Response:
  - 204: Cookie cleared
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AdminSessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}

// meResponse reports the session state for the admin shell.
type meResponse struct {
	Authenticated bool `json:"authenticated"`
}

/*
GET /api/v1/admin/me.

Description: Reports whether the request carries a valid admin session.
The admin shell calls this on load to decide between the editor and the
login form.

Response:
  - 200: meResponse
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, meResponse{
		Authenticated: requestutil.AdminClaims(request) != nil,
	})
}
