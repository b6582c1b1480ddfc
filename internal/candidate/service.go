package candidate

import (
	"context"
	"log/slog"

	"github.com/guestradar/guestradar/internal/platform/validate"
	"github.com/guestradar/guestradar/pkg/pagination"
	"github.com/guestradar/guestradar/pkg/pointer"
	"github.com/guestradar/guestradar/pkg/slice"
)

type Service struct {
	repo   Repository
	cache  StatsCache
	logger *slog.Logger
}

// NewService wires the candidate service. cache may be nil, in which case
// statistics are recomputed on every request.
func NewService(repo Repository, cache StatsCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListCandidates(context context.Context, filter Filter, params pagination.Params) ([]*Candidate, int, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	return service.repo.ListCandidates(context, filter, params)
}

func (service *Service) GetCandidate(context context.Context, id int) (*Candidate, error) {
	return service.repo.GetCandidate(context, id)
}

func (service *Service) CreateCandidate(context context.Context, c *Candidate) error {
	validator := &validate.Validator{}
	validateCandidate(validator, c)

	if err := validator.Err(); err != nil {
		return err
	}

	// Store-assigned fields are never client-controlled.
	c.ID = 0

	if err := service.repo.CreateCandidate(context, c); err != nil {
		return err
	}

	service.invalidateStats(context)
	service.logger.Info("candidate_created",
		slog.Int("candidate_id", c.ID),
		slog.String("platform", c.Platform),
	)
	return nil
}

func (service *Service) UpdateCandidate(context context.Context, id int, patch Patch) (*Candidate, error) {
	validator := &validate.Validator{}
	validatePatch(validator, patch)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateCandidate(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.invalidateStats(context)
	service.logger.Info("candidate_updated", slog.Int("candidate_id", id))
	return updated, nil
}

func (service *Service) DeleteCandidate(context context.Context, id int) error {
	if err := service.repo.DeleteCandidate(context, id); err != nil {
		return err
	}

	service.invalidateStats(context)
	service.logger.Warn("candidate_deleted", slog.Int("candidate_id", id))
	return nil
}

func (service *Service) ToggleFavorite(context context.Context, id int) (*Candidate, error) {
	updated, err := service.repo.ToggleFavorite(context, id)
	if err != nil {
		return nil, err
	}

	service.invalidateStats(context)
	service.logger.Info("candidate_favorite_toggled",
		slog.Int("candidate_id", id),
		slog.Bool("is_favorite", updated.IsFavorite),
	)
	return updated, nil
}

// validateCandidate applies the full input schema for create.
func validateCandidate(v *validate.Validator, c *Candidate) {
	v.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 200)
	v.Required(FieldSocialHandle, c.SocialHandle).MaxLen(FieldSocialHandle, c.SocialHandle, 200)
	v.OneOf(FieldPlatform, c.Platform, Platforms...)
	v.OneOf(FieldRegion, c.Region, Regions...)
	v.Min(FieldFollowerCount, c.FollowerCount, 0)
	v.Required(FieldDescription, c.Description).MinLen(FieldDescription, c.Description, 10)

	validateTopics(v, c.Topics)
	validateAdditionalPlatforms(v, c.AdditionalPlatforms)

	if url := pointer.Val(c.ImageURL); url != "" {
		v.URL(FieldImageURL, url)
	}
}

// validatePatch applies the same rules as create, but only to set fields.
func validatePatch(v *validate.Validator, p Patch) {
	if p.Name != nil {
		v.Required(FieldName, *p.Name).MaxLen(FieldName, *p.Name, 200)
	}
	if p.SocialHandle != nil {
		v.Required(FieldSocialHandle, *p.SocialHandle).MaxLen(FieldSocialHandle, *p.SocialHandle, 200)
	}
	if p.Platform != nil {
		v.OneOf(FieldPlatform, *p.Platform, Platforms...)
	}
	if p.Region != nil {
		v.OneOf(FieldRegion, *p.Region, Regions...)
	}
	if p.FollowerCount != nil {
		v.Min(FieldFollowerCount, *p.FollowerCount, 0)
	}
	if p.Description != nil {
		v.Required(FieldDescription, *p.Description).MinLen(FieldDescription, *p.Description, 10)
	}
	if p.Topics != nil {
		validateTopics(v, *p.Topics)
	}
	if p.AdditionalPlatforms != nil {
		validateAdditionalPlatforms(v, *p.AdditionalPlatforms)
	}
	if url := pointer.Val(p.ImageURL); url != "" {
		v.URL(FieldImageURL, url)
	}
}

func validateTopics(v *validate.Validator, topics []string) {
	v.Custom(FieldTopics, len(topics) < 1, "At least one topic is required")
	v.Custom(FieldTopics, len(topics) > MaxTopics, "Maximum of 3 topics allowed")
	for _, topic := range topics {
		v.Custom(FieldTopics, !slice.Contains(Topics, topic), "Unknown topic: "+topic)
	}
}

func validateAdditionalPlatforms(v *validate.Validator, platforms []string) {
	for _, platform := range platforms {
		v.Custom(FieldAdditionalPlatforms, !slice.Contains(Platforms, platform), "Unknown platform: "+platform)
	}
}
