package queries

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"coupon-swap/internal/pkg/errs"

	"github.com/google/uuid"
)

// Match scoring weights, carried over from the legacy matcher.
const (
	platformWeight = 0.8
	categoryWeight = 0.15
)

type CouponView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Platform    string    `json:"platform"`
	Category    string    `json:"category"`
	ValueCents  int64     `json:"value_cents"`
	Code        *string   `json:"code,omitempty"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ExpiresAt   string    `json:"expires_at"`
	CreatedAt   string    `json:"created_at"`
}

type CouponMatchView struct {
	CouponView
	Score int `json:"score"`
}

type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	ListAll(ctx context.Context) ([]*CouponView, error)
	// MatchesForUser scores other users' coupons against the user's
	// preferred platforms and categories, sorted by soonest expiry.
	MatchesForUser(ctx context.Context, userID uuid.UUID) ([]*CouponMatchView, error)
	// Search filters the catalog by whitespace-separated keywords over
	// platform, category, value and expiry fields.
	Search(ctx context.Context, query string, order SortOrder) ([]*CouponView, error)
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindAll(ctx context.Context) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	coupons CouponReadStore
	users   UserReadStore
}

func NewCouponQueries(coupons CouponReadStore, users UserReadStore) CouponQueries {
	return &couponQueriesImpl{coupons: coupons, users: users}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	return q.coupons.FindByID(ctx, id)
}

func (q *couponQueriesImpl) ListAll(ctx context.Context) ([]*CouponView, error) {
	return q.coupons.FindAll(ctx)
}

func (q *couponQueriesImpl) MatchesForUser(ctx context.Context, userID uuid.UUID) ([]*CouponMatchView, error) {
	userView, err := q.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(userView.PreferredPlatforms) == 0 && len(userView.PreferredCategories) == 0 {
		return []*CouponMatchView{}, nil
	}

	all, err := q.coupons.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*CouponMatchView, 0, len(all))
	for _, c := range all {
		if c.OwnerID == userID {
			continue
		}
		platformMatch := containsFold(userView.PreferredPlatforms, c.Platform)
		categoryMatch := containsFold(userView.PreferredCategories, c.Category)
		if !platformMatch && !categoryMatch {
			continue
		}

		score := 0.0
		if platformMatch {
			score += platformWeight
		}
		if categoryMatch {
			score += categoryWeight
		}
		matches = append(matches, &CouponMatchView{
			CouponView: *c,
			Score:      int(math.Round(score * 100)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ExpiresAt < matches[j].ExpiresAt
	})
	return matches, nil
}

func (q *couponQueriesImpl) Search(ctx context.Context, query string, order SortOrder) ([]*CouponView, error) {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return nil, errs.ErrDomainValidation
	}

	all, err := q.coupons.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*CouponView, 0, len(all))
	for _, c := range all {
		if matchesAnyKeyword(c, keywords) {
			results = append(results, c)
		}
	}

	switch order {
	case SortAsc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].ExpiresAt < results[j].ExpiresAt })
	case SortDesc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].ExpiresAt > results[j].ExpiresAt })
	}
	return results, nil
}

func matchesAnyKeyword(c *CouponView, keywords []string) bool {
	fields := []string{
		strings.ToLower(c.Platform),
		strings.ToLower(c.Category),
		strings.ToLower(c.Description),
		strconv.FormatInt(c.ValueCents, 10),
		strings.ToLower(c.ExpiresAt),
	}
	for _, keyword := range keywords {
		for _, field := range fields {
			if strings.Contains(field, keyword) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
