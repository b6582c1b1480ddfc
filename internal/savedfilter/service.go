package savedfilter

import (
	"context"
	"log/slog"

	"github.com/guestradar/guestradar/internal/candidate"
	"github.com/guestradar/guestradar/internal/platform/validate"
)

// CandidateSource supplies the candidate snapshot the match counter runs
// over. The candidate repository satisfies it directly.
type CandidateSource interface {
	AllCandidates(context context.Context) ([]*candidate.Candidate, error)
}

type Service struct {
	repo       Repository
	candidates CandidateSource
	logger     *slog.Logger
}

func NewService(repo Repository, candidates CandidateSource, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		candidates: candidates,
		logger:     logger,
	}
}

// ListFilters returns every saved filter, each annotated with how many
// candidates it currently matches.
func (service *Service) ListFilters(context context.Context) ([]*SavedFilter, error) {
	filters, err := service.repo.ListFilters(context)
	if err != nil {
		return nil, err
	}

	if len(filters) == 0 {
		return filters, nil
	}

	all, err := service.candidates.AllCandidates(context)
	if err != nil {
		return nil, err
	}

	for _, f := range filters {
		f.MatchCount = candidate.CountMatches(all, f.Criteria)
	}
	return filters, nil
}

func (service *Service) GetFilter(context context.Context, id int) (*SavedFilter, error) {
	f, err := service.repo.GetFilter(context, id)
	if err != nil {
		return nil, err
	}

	all, err := service.candidates.AllCandidates(context)
	if err != nil {
		return nil, err
	}

	f.MatchCount = candidate.CountMatches(all, f.Criteria)
	return f, nil
}

func (service *Service) CreateFilter(context context.Context, input Input) (*SavedFilter, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	f := &SavedFilter{Name: input.Name, Criteria: input.Criteria}
	if err := service.repo.CreateFilter(context, f); err != nil {
		return nil, err
	}

	all, err := service.candidates.AllCandidates(context)
	if err != nil {
		return nil, err
	}
	f.MatchCount = candidate.CountMatches(all, f.Criteria)

	service.logger.Info("saved_filter_created",
		slog.Int("filter_id", f.ID),
		slog.String("name", f.Name),
	)
	return f, nil
}

func (service *Service) UpdateFilter(context context.Context, id int, input Input) (*SavedFilter, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	f, err := service.repo.UpdateFilter(context, id, input)
	if err != nil {
		return nil, err
	}

	all, err := service.candidates.AllCandidates(context)
	if err != nil {
		return nil, err
	}
	f.MatchCount = candidate.CountMatches(all, f.Criteria)

	service.logger.Info("saved_filter_updated", slog.Int("filter_id", id))
	return f, nil
}

func (service *Service) DeleteFilter(context context.Context, id int) error {
	if err := service.repo.DeleteFilter(context, id); err != nil {
		return err
	}

	service.logger.Warn("saved_filter_deleted", slog.Int("filter_id", id))
	return nil
}

// PreviewFilter counts the candidates a criteria object would match without
// persisting anything. It backs the live "N matches" readout in the filter
// builder.
func (service *Service) PreviewFilter(context context.Context, criteria candidate.Criteria) (int, error) {
	if err := criteria.Validate(); err != nil {
		return 0, err
	}

	all, err := service.candidates.AllCandidates(context)
	if err != nil {
		return 0, err
	}

	return candidate.CountMatches(all, criteria), nil
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 100)

	if err := v.Err(); err != nil {
		return err
	}
	return input.Criteria.Validate()
}
