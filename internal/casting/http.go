// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package casting's HTTP layer exposes the public catalogue endpoints and the
admin mutations.

# Security

Read endpoints are public. Mutations live under an admin-only subtree
guarded by the RequireAdmin middleware supplied at wiring time.
*/
package casting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/mickey-farmer/startingOutOK/internal/platform/request"
	"github.com/mickey-farmer/startingOutOK/internal/platform/respond"
	"github.com/mickey-farmer/startingOutOK/pkg/pagination"
)

// Handler implements the HTTP layer for the casting-call catalogue.
type Handler struct {
	castingService *Service
	requireAdmin   func(http.Handler) http.Handler
}

// NewHandler constructs a new casting [Handler].
func NewHandler(service *Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{castingService: service, requireAdmin: requireAdmin}
}

// Routes returns a [chi.Router] configured with the catalogue endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public catalogue
	router.Get("/", handler.list)
	router.Get("/archived", handler.listArchived)
	router.Get("/{slug}", handler.get)

	// Admin mutations
	router.Group(func(admin chi.Router) {
		admin.Use(handler.requireAdmin)
		admin.Post("/", handler.save)
		admin.Delete("/{slug}", handler.remove)
		admin.Post("/{slug}/archive", handler.archive)
		admin.Post("/{slug}/unarchive", handler.unarchive)
		admin.Post("/archive-expired", handler.archiveExpired)
	})

	return router
}

// # Public Endpoints

/*
GET /api/v1/casting-calls.

Description: The active listing, filtered by the visitor's query
parameters (age, location, pay, type, union, under18, gender, ethnicity,
expiring), with the expiring-soon rail and the archive count.

Response:
  - 200: Listing
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Age:       requestutil.Query(request, "age"),
		Location:  requestutil.Query(request, "location"),
		Pay:       requestutil.Query(request, "pay"),
		Type:      requestutil.Query(request, "type"),
		Union:     requestutil.Query(request, "union"),
		Under18:   requestutil.Query(request, "under18"),
		Gender:    requestutil.Query(request, "gender"),
		Ethnicity: requestutil.Query(request, "ethnicity"),
		Expiring:  requestutil.Query(request, "expiring"),
	}

	listing, err := handler.castingService.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listing)
}

/*
GET /api/v1/casting-calls/archived.

Description: The archive, newest-first, paginated.

Response:
  - 200: []Summary with pagination metadata
*/
func (handler *Handler) listArchived(writer http.ResponseWriter, request *http.Request) {
	archived, err := handler.castingService.ListArchived(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	page := pagination.Slice(archived, params)
	respond.Paginated(writer, page, pagination.NewMeta(params.Page, params.Limit, len(archived)))
}

/*
GET /api/v1/casting-calls/{slug}.

Response:
  - 200: Entry: The full record, archived or not
  - 404: Absent or deleted slug
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.castingService.Get(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// # Admin Endpoints

/*
POST /api/v1/casting-calls.

Description: Creates or replaces an entry. The editor always submits the
complete record; the slug is derived from the title when omitted.

Response:
  - 201: Entry: The persisted record
  - 400: Validation failures
  - 401: Admin session required
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var entry Entry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.castingService.Save(request.Context(), &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, saved)
}

/*
DELETE /api/v1/casting-calls/{slug}.

Response:
  - 204: Entry soft-deleted
  - 401: Admin session required
  - 404: Absent or already deleted slug
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.castingService.Delete(request.Context(), requestutil.Param(request, "slug")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// POST /api/v1/casting-calls/{slug}/archive moves an entry to the archive.
func (handler *Handler) archive(writer http.ResponseWriter, request *http.Request) {
	handler.setArchived(writer, request, true)
}

// POST /api/v1/casting-calls/{slug}/unarchive restores an entry to the
// active listing.
func (handler *Handler) unarchive(writer http.ResponseWriter, request *http.Request) {
	handler.setArchived(writer, request, false)
}

func (handler *Handler) setArchived(writer http.ResponseWriter, request *http.Request, archived bool) {
	err := handler.castingService.SetArchived(request.Context(), requestutil.Param(request, "slug"), archived)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// archiveExpiredResponse reports a manual sweep's result.
type archiveExpiredResponse struct {
	Archived int `json:"archived"`
}

/*
POST /api/v1/casting-calls/archive-expired.

Description: Runs the past-deadline sweep on demand, the same pass the
nightly job performs.

Response:
  - 200: archiveExpiredResponse: Number of entries archived
  - 401: Admin session required
*/
func (handler *Handler) archiveExpired(writer http.ResponseWriter, request *http.Request) {
	count, err := handler.castingService.ArchiveExpired(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, archiveExpiredResponse{Archived: count})
}
