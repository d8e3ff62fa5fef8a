package businessflow

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jiannachen/ai-magellan-sub001/models"
)

// errStoreDown simulates an unreachable store for failure-path tests.
var errStoreDown = errors.New("store unavailable")

// fakeWebsiteRepo is a slice-backed WebsiteRepository that interprets
// WebsiteFilter and SortSpec the same way the SQL implementation does, so
// flow tests can assert ordering and predicate behavior without a database.
type fakeWebsiteRepo struct {
	websites []*models.Website
	failing  bool
}

func (r *fakeWebsiteRepo) ByID(ctx context.Context, id uint) (*models.Website, error) {
	if r.failing {
		return nil, errStoreDown
	}
	for _, w := range r.websites {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) BySlug(ctx context.Context, slug string) (*models.Website, error) {
	if r.failing {
		return nil, errStoreDown
	}
	for _, w := range r.websites {
		if w.Slug == slug {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) ByFilter(ctx context.Context, filter models.WebsiteFilter, sortSpec models.SortSpec, limit, offset int) ([]*models.Website, error) {
	if r.failing {
		return nil, errStoreDown
	}

	matched := r.match(filter)
	sortWebsites(matched, sortSpec)

	if offset >= len(matched) {
		return []*models.Website{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeWebsiteRepo) Count(ctx context.Context, filter models.WebsiteFilter) (int64, error) {
	if r.failing {
		return 0, errStoreDown
	}
	return int64(len(r.match(filter))), nil
}

func (r *fakeWebsiteRepo) Exists(ctx context.Context, filter models.WebsiteFilter) (bool, error) {
	if r.failing {
		return false, errStoreDown
	}
	return len(r.match(filter)) > 0, nil
}

func (r *fakeWebsiteRepo) Save(ctx context.Context, website *models.Website) error {
	if r.failing {
		return errStoreDown
	}
	if website.ID == 0 {
		var max uint
		for _, w := range r.websites {
			if w.ID > max {
				max = w.ID
			}
		}
		website.ID = max + 1
	}
	r.websites = append(r.websites, website)
	return nil
}

func (r *fakeWebsiteRepo) UpdateStatus(ctx context.Context, id uint, status models.WebsiteStatus) error {
	if r.failing {
		return errStoreDown
	}
	for _, w := range r.websites {
		if w.ID == id {
			w.Status = status
			return nil
		}
	}
	return nil
}

func (r *fakeWebsiteRepo) IncrementVisits(ctx context.Context, id uint) error {
	if r.failing {
		return errStoreDown
	}
	for _, w := range r.websites {
		if w.ID == id {
			w.Visits++
		}
	}
	return nil
}

func (r *fakeWebsiteRepo) IncrementLikes(ctx context.Context, id uint) error {
	if r.failing {
		return errStoreDown
	}
	for _, w := range r.websites {
		if w.ID == id {
			w.Likes++
		}
	}
	return nil
}

func (r *fakeWebsiteRepo) ApprovedCountsByCategory(ctx context.Context) (map[uint]int64, error) {
	if r.failing {
		return nil, errStoreDown
	}
	counts := make(map[uint]int64)
	for _, w := range r.websites {
		if w.Status == models.WebsiteStatusApproved {
			counts[w.CategoryID]++
		}
	}
	return counts, nil
}

func (r *fakeWebsiteRepo) match(filter models.WebsiteFilter) []*models.Website {
	var out []*models.Website
	for _, w := range r.websites {
		if matchesFilter(w, filter) {
			out = append(out, w)
		}
	}
	return out
}

func matchesFilter(w *models.Website, f models.WebsiteFilter) bool {
	if f.ID != nil && w.ID != *f.ID {
		return false
	}
	if f.Slug != nil && w.Slug != *f.Slug {
		return false
	}
	if f.Status != nil && w.Status != *f.Status {
		return false
	}
	if f.Query != nil {
		q := strings.ToLower(*f.Query)
		if !strings.Contains(strings.ToLower(w.Title), q) &&
			!strings.Contains(strings.ToLower(w.Tagline), q) &&
			!strings.Contains(strings.ToLower(w.Description), q) {
			return false
		}
	}
	if len(f.CategoryIDs) > 0 && !containsUint(f.CategoryIDs, w.CategoryID) {
		return false
	}
	if len(f.PricingModels) > 0 {
		found := false
		for _, pm := range f.PricingModels {
			if w.PricingModel == pm {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinQualityScore != nil && w.QualityScore < *f.MinQualityScore {
		return false
	}
	if f.IsTrusted != nil && w.IsTrusted != *f.IsTrusted {
		return false
	}
	if f.IsFeatured != nil && w.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.SSLEnabled != nil && w.SSLEnabled != *f.SSLEnabled {
		return false
	}
	if f.HasFreePlan != nil {
		hasFree := w.PricingModel == models.PricingModelFree || w.HasFreeVersion
		if hasFree != *f.HasFreePlan {
			return false
		}
	}
	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range w.Tags {
				if have == want {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}
	if f.CreatedAfter != nil && w.CreatedAt.Before(*f.CreatedAfter) {
		return false
	}
	if f.CreatedBefore != nil && w.CreatedAt.After(*f.CreatedBefore) {
		return false
	}
	return true
}

func sortWebsites(websites []*models.Website, spec models.SortSpec) {
	sort.SliceStable(websites, func(i, j int) bool {
		a, b := websites[i], websites[j]

		if spec.RelevanceQuery != "" {
			ra, rb := relevanceWeight(a, spec.RelevanceQuery), relevanceWeight(b, spec.RelevanceQuery)
			if ra != rb {
				return ra > rb
			}
		}

		for _, key := range spec.Keys {
			va, vb := sortValue(a, key.Column), sortValue(b, key.Column)
			if va == vb {
				continue
			}
			if key.Desc {
				return va > vb
			}
			return va < vb
		}
		return false
	})
}

func relevanceWeight(w *models.Website, query string) int64 {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(strings.ToLower(w.Title), q):
		return 3
	case strings.Contains(strings.ToLower(w.Tagline), q):
		return 2
	case strings.Contains(strings.ToLower(w.Description), q):
		return 1
	default:
		return 0
	}
}

// sortValue projects a column to a comparable scalar. Title ordering is
// approximated by byte value, which is what the tests use.
func sortValue(w *models.Website, column string) string {
	switch column {
	case models.SortColumnID:
		return padNum(int64(w.ID))
	case models.SortColumnCreatedAt:
		return w.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	case models.SortColumnVisits:
		return padNum(w.Visits)
	case models.SortColumnLikes:
		return padNum(w.Likes)
	case models.SortColumnQualityScore:
		return padNum(int64(w.QualityScore))
	case models.SortColumnTitle:
		return strings.ToLower(w.Title)
	default:
		return ""
	}
}

func padNum(v int64) string {
	const digits = 19
	s := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		s[i] = byte('0' + v%10)
		v /= 10
	}
	return string(s)
}

func containsUint(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// fakeCategoryRepo is a slice-backed CategoryRepository.
type fakeCategoryRepo struct {
	categories []*models.Category
	failing    bool
}

func (r *fakeCategoryRepo) ByID(ctx context.Context, id uint) (*models.Category, error) {
	if r.failing {
		return nil, errStoreDown
	}
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) BySlug(ctx context.Context, slug string) (*models.Category, error) {
	if r.failing {
		return nil, errStoreDown
	}
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ByFilter(ctx context.Context, filter models.CategoryFilter, orderBy string, limit, offset int) ([]*models.Category, error) {
	if r.failing {
		return nil, errStoreDown
	}
	var out []*models.Category
	for _, c := range r.categories {
		if filter.ID != nil && c.ID != *filter.ID {
			continue
		}
		if filter.Slug != nil && c.Slug != *filter.Slug {
			continue
		}
		if filter.ParentID != nil && (c.ParentID == nil || *c.ParentID != *filter.ParentID) {
			continue
		}
		if filter.RootOnly && c.ParentID != nil {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeCategoryRepo) Save(ctx context.Context, category *models.Category) error {
	if r.failing {
		return errStoreDown
	}
	if category.ID == 0 {
		var max uint
		for _, c := range r.categories {
			if c.ID > max {
				max = c.ID
			}
		}
		category.ID = max + 1
	}
	r.categories = append(r.categories, category)
	return nil
}
