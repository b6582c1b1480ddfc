package savedfilter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guestradar/guestradar/internal/candidate"
	requestutil "github.com/guestradar/guestradar/internal/platform/request"
	"github.com/guestradar/guestradar/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the saved-filter route group, mounted under /api/filters.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listFilters)
	router.Post("/", handler.createFilter)
	router.Post("/preview", handler.previewFilter)
	router.Get("/{id}", handler.getFilter)
	router.Patch("/{id}", handler.updateFilter)
	router.Delete("/{id}", handler.deleteFilter)

	return router
}

func (handler *Handler) listFilters(writer http.ResponseWriter, request *http.Request) {
	filters, err := handler.service.ListFilters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, filters)
}

func (handler *Handler) getFilter(writer http.ResponseWriter, request *http.Request) {
	filterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	f, err := handler.service.GetFilter(request.Context(), filterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, f)
}

func (handler *Handler) createFilter(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateFilter(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateFilter(writer http.ResponseWriter, request *http.Request) {
	filterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateFilter(request.Context(), filterID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteFilter(writer http.ResponseWriter, request *http.Request) {
	filterID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFilter(request.Context(), filterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Saved filter deleted successfully")
}

// previewBody is the match-count preview payload.
type previewBody struct {
	Criteria candidate.Criteria `json:"criteria"`
}

func (handler *Handler) previewFilter(writer http.ResponseWriter, request *http.Request) {
	var body previewBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.service.PreviewFilter(request.Context(), body.Criteria)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"matchCount": count})
}
