// Copyright (c) 2026 Starting Out OK. All rights reserved.

package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/mickey-farmer/startingOutOK/internal/platform/request"
	"github.com/mickey-farmer/startingOutOK/internal/platform/respond"
)

// Handler implements the HTTP layer for the cast & crew directory.
type Handler struct {
	directoryService *Service
	requireAdmin     func(http.Handler) http.Handler
}

// NewHandler constructs a new directory [Handler].
func NewHandler(service *Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{directoryService: service, requireAdmin: requireAdmin}
}

// Routes returns a [chi.Router] configured with the directory endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(admin chi.Router) {
		admin.Use(handler.requireAdmin)
		admin.Post("/", handler.save)
		admin.Delete("/{id}", handler.remove)
	})

	return router
}

/*
GET /api/v1/directory.

Description: The directory grouped by section in canonical order, filtered
by section, location and free-text search (q).

Response:
  - 200: []Section
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Section:  requestutil.Query(request, "section"),
		Location: requestutil.Query(request, "location"),
		Search:   requestutil.Query(request, "q"),
	}

	sections, err := handler.directoryService.Directory(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sections)
}

// GET /api/v1/directory/{id} returns one profile.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.directoryService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
POST /api/v1/directory.

Description: Creates or replaces a profile. New profiles get a minted ID.

Response:
  - 201: Entry: The persisted profile
  - 400: Validation failures
  - 401: Admin session required
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var entry Entry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.directoryService.Save(request.Context(), &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, saved)
}

// DELETE /api/v1/directory/{id} removes a profile.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.directoryService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
