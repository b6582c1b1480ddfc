package candidate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"github.com/guestradar/guestradar/internal/platform/apperr"
	requestutil "github.com/guestradar/guestradar/internal/platform/request"
	"github.com/guestradar/guestradar/internal/platform/respond"
	"github.com/guestradar/guestradar/pkg/pagination"
)

// filterDecoder maps the list query string onto a [Filter].
var filterDecoder = func() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}()

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the candidate route group, mounted under /api/candidates.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCandidates)
	router.Post("/", handler.createCandidate)
	router.Get("/stats", handler.candidateStats)
	router.Get("/export", handler.exportCandidates)
	router.Get("/{id}", handler.getCandidate)
	router.Patch("/{id}", handler.updateCandidate)
	router.Delete("/{id}", handler.deleteCandidate)
	router.Post("/{id}/toggle-favorite", handler.toggleFavorite)

	return router
}

// decodeFilter parses the shared filter query parameters.
func decodeFilter(request *http.Request) (Filter, error) {
	filter := Filter{}
	if err := filterDecoder.Decode(&filter, request.URL.Query()); err != nil {
		return Filter{}, apperr.ValidationError("Invalid filter parameters")
	}
	return filter, nil
}

func (handler *Handler) listCandidates(writer http.ResponseWriter, request *http.Request) {
	filter, err := decodeFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	candidates, total, err := handler.service.ListCandidates(request.Context(), filter, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, candidates, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCandidate(writer http.ResponseWriter, request *http.Request) {
	candidateID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.GetCandidate(request.Context(), candidateID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) createCandidate(writer http.ResponseWriter, request *http.Request) {
	var input Candidate

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCandidate(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCandidate(writer http.ResponseWriter, request *http.Request) {
	candidateID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCandidate(request.Context(), candidateID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCandidate(writer http.ResponseWriter, request *http.Request) {
	candidateID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCandidate(request.Context(), candidateID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Candidate deleted successfully")
}

func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	candidateID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.ToggleFavorite(request.Context(), candidateID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) candidateStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.CandidateStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) exportCandidates(writer http.ResponseWriter, request *http.Request) {
	filter, err := decodeFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Validate before the first byte is written so errors still produce a
	// clean JSON response.
	if err := filter.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "text/csv; charset=utf-8")
	writer.Header().Set("Content-Disposition", `attachment; filename="podcast-candidates.csv"`)

	if err := handler.service.ExportCSV(request.Context(), filter, writer); err != nil {
		respond.Error(writer, request, err)
		return
	}
}
