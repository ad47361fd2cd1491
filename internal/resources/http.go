// Copyright (c) 2026 Starting Out OK. All rights reserved.

package resources

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/mickey-farmer/startingOutOK/internal/platform/request"
	"github.com/mickey-farmer/startingOutOK/internal/platform/respond"
)

// Handler implements the HTTP layer for the community resources page.
type Handler struct {
	resourcesService *Service
	requireAdmin     func(http.Handler) http.Handler
}

// NewHandler constructs a new resources [Handler].
func NewHandler(service *Service, requireAdmin func(http.Handler) http.Handler) *Handler {
	return &Handler{resourcesService: service, requireAdmin: requireAdmin}
}

// Routes returns a [chi.Router] configured with the resources endpoints.
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
GET /api/v1/resources.

Description: Resources grouped by section in canonical order, filtered by
section, subcategory (Classes & Workshops only) and location.

Response:
  - 200: []Section
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Section:     requestutil.Query(request, "section"),
		Subcategory: requestutil.Query(request, "subcategory"),
		Location:    requestutil.Query(request, "location"),
	}

	sections, err := handler.resourcesService.Resources(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sections)
}

// GET /api/v1/resources/{id} returns one resource.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.resourcesService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
POST /api/v1/resources.

Description: Creates or replaces a resource. New resources get a minted ID.

Response:
  - 201: Entry: The persisted resource
  - 400: Validation failures
  - 401: Admin session required
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var entry Entry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.resourcesService.Save(request.Context(), &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, saved)
}

// DELETE /api/v1/resources/{id} removes a resource.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.resourcesService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
