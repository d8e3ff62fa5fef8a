// Package businessflow contains use cases for tool submissions and counters
package businessflow

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jiannachen/ai-magellan-sub001/app/dto"
	"github.com/jiannachen/ai-magellan-sub001/models"
	"github.com/jiannachen/ai-magellan-sub001/repository"
	"github.com/jiannachen/ai-magellan-sub001/utils"
)

// SubmissionFlow defines submission and engagement-counter operations.
// Submissions enter the catalog as pending; search and rankings never see
// them until moderation approves.
type SubmissionFlow interface {
	SubmitWebsite(ctx context.Context, req *dto.SubmitWebsiteRequest, metadata *ClientMetadata) (*dto.SubmitWebsiteResponse, error)
	RecordVisit(ctx context.Context, websiteID uint) error
	RecordLike(ctx context.Context, websiteID uint) error
}

type SubmissionFlowImpl struct {
	websiteRepo  repository.WebsiteRepository
	categoryRepo repository.CategoryRepository
}

func NewSubmissionFlow(websiteRepo repository.WebsiteRepository, categoryRepo repository.CategoryRepository) SubmissionFlow {
	return &SubmissionFlowImpl{
		websiteRepo:  websiteRepo,
		categoryRepo: categoryRepo,
	}
}

// SubmitWebsite creates a pending catalog entry
func (f *SubmissionFlowImpl) SubmitWebsite(ctx context.Context, req *dto.SubmitWebsiteRequest, metadata *ClientMetadata) (resp *dto.SubmitWebsiteResponse, err error) {
	defer func() {
		if err != nil && !isDomainError(err) {
			err = NewBusinessError("SUBMIT_WEBSITE_FAILED", "Failed to submit website", err)
		}
	}()

	category, err := f.categoryRepo.BySlug(ctx, req.CategorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	slug := strings.TrimSpace(req.Slug)
	taken, err := f.websiteRepo.Exists(ctx, models.WebsiteFilter{Slug: &slug})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrWebsiteSlugTaken
	}

	pricingModel := models.PricingModel(req.PricingModel)
	if !pricingModel.Valid() {
		pricingModel = models.PricingModelFree
	}

	now := utils.UTCNow()
	website := models.Website{
		UUID:           uuid.New(),
		Title:          strings.TrimSpace(req.Title),
		Slug:           slug,
		Tagline:        strings.TrimSpace(req.Tagline),
		Description:    req.Description,
		URL:            strings.TrimSpace(req.URL),
		LogoURL:        req.LogoURL,
		ThumbnailURL:   req.ThumbnailURL,
		CategoryID:     category.ID,
		Tags:           req.Tags,
		PricingModel:   pricingModel,
		HasFreeVersion: req.HasFreeVersion,
		SSLEnabled:     req.SSLEnabled,
		Status:         models.WebsiteStatusPending,
		Features:       req.Features,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = f.websiteRepo.Save(ctx, &website); err != nil {
		return nil, err
	}

	return &dto.SubmitWebsiteResponse{
		ID:     website.ID,
		UUID:   website.UUID.String(),
		Slug:   website.Slug,
		Status: website.Status.String(),
	}, nil
}

// RecordVisit increments the visit counter of an approved website. The
// counter write path is independent from search reads; concurrent searches
// tolerate the drift.
func (f *SubmissionFlowImpl) RecordVisit(ctx context.Context, websiteID uint) error {
	if err := f.requireApproved(ctx, websiteID); err != nil {
		return err
	}
	if err := f.websiteRepo.IncrementVisits(ctx, websiteID); err != nil {
		return NewBusinessError("RECORD_VISIT_FAILED", "Failed to record visit", err)
	}
	return nil
}

// RecordLike increments the like counter of an approved website
func (f *SubmissionFlowImpl) RecordLike(ctx context.Context, websiteID uint) error {
	if err := f.requireApproved(ctx, websiteID); err != nil {
		return err
	}
	if err := f.websiteRepo.IncrementLikes(ctx, websiteID); err != nil {
		return NewBusinessError("RECORD_LIKE_FAILED", "Failed to record like", err)
	}
	return nil
}

func (f *SubmissionFlowImpl) requireApproved(ctx context.Context, websiteID uint) error {
	website, err := f.websiteRepo.ByID(ctx, websiteID)
	if err != nil {
		return NewBusinessError("FETCH_WEBSITE_FAILED", "Failed to fetch website", err)
	}
	if website == nil {
		return ErrWebsiteNotFound
	}
	if !website.IsApproved() {
		return ErrWebsiteNotApproved
	}
	return nil
}

func isDomainError(err error) bool {
	return IsCategoryNotFound(err) || IsWebsiteSlugTaken(err) ||
		IsWebsiteNotFound(err) || IsWebsiteNotApproved(err)
}
