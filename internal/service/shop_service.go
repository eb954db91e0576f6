package service

import (
	"strings"

	"meshitomo/internal/model"
	"meshitomo/internal/repository"
	"meshitomo/pkg/logger"

	"go.uber.org/zap"
)

// budgetBuffer widens the requested budget ceiling by a fixed margin.
// Inherited business rule; flagged with product, kept as-is until they rule.
const budgetBuffer = 1000

// Distance filter codes as submitted by the search form.
const (
	DistanceCodeNear = "2" // within 500m
	DistanceCodeMid  = "3" // within 1000m
	DistanceCodeFar  = "4" // within 3000m
)

// SearchRequest is the raw filter input from the search form. Every field is
// optional; zero values deactivate their filter.
type SearchRequest struct {
	Budget   int      // requested budget ceiling in yen
	Distance string   // distance code, "" or "2"/"3"/"4"
	Genres   []string // genre tags, entries may be comma-separated
	UserID   int      // session user, >0 enables the is_favorite annotation
}

// ShopSearchStore is the persistence surface the shop service needs.
type ShopSearchStore interface {
	Search(criteria repository.SearchCriteria) ([]repository.SearchResult, error)
	FindAll() ([]model.Shop, error)
}

// ShopService translates raw search input into resolved criteria and runs
// catalog queries.
type ShopService struct {
	store ShopSearchStore
}

// NewShopService creates a ShopService.
func NewShopService(store ShopSearchStore) *ShopService {
	return &ShopService{store: store}
}

// distanceLimit maps a distance code to its meter ceiling, 0 for no filter.
func distanceLimit(code string) int {
	switch code {
	case DistanceCodeNear:
		return 500
	case DistanceCodeMid:
		return 1000
	case DistanceCodeFar:
		return 3000
	default:
		return 0
	}
}

// normalizeGenres flattens possibly comma-separated genre entries into a
// clean tag list. Blank entries disappear; an empty result means no filter.
func normalizeGenres(genres []string) []string {
	normalized := make([]string, 0, len(genres))
	for _, entry := range genres {
		for _, genre := range strings.Split(entry, ",") {
			genre = strings.TrimSpace(genre)
			if genre != "" {
				normalized = append(normalized, genre)
			}
		}
	}
	return normalized
}

// resolveCriteria applies the budget buffer, the distance code mapping and
// genre normalization. Absent filters stay absent.
func resolveCriteria(req SearchRequest) repository.SearchCriteria {
	criteria := repository.SearchCriteria{
		Genres: normalizeGenres(req.Genres),
		UserID: req.UserID,
	}
	if req.Budget > 0 {
		criteria.MaxBudget = req.Budget + budgetBuffer
	}
	criteria.MaxDistance = distanceLimit(req.Distance)
	return criteria
}

// Search runs a filtered catalog query. The result is never nil, so callers
// can iterate unconditionally.
func (s *ShopService) Search(req SearchRequest) ([]repository.SearchResult, error) {
	results, err := s.store.Search(resolveCriteria(req))
	if err != nil {
		logger.Error("shop store: search failed",
			zap.Int("budget", req.Budget),
			zap.String("distance", req.Distance),
			zap.Strings("genres", req.Genres),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	return results, nil
}

// ListAll returns the full catalog.
func (s *ShopService) ListAll() ([]model.Shop, error) {
	shops, err := s.store.FindAll()
	if err != nil {
		logger.Error("shop store: list failed", zap.Error(err))
		return nil, ErrStorage
	}
	return shops, nil
}
