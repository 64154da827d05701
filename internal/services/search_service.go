package services

import (
	"fmt"
	"strings"
	"unicode"

	"alumnihub_backend/internal/repositories"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	// DefaultPageSize and MaxPageSize bound the cost of one search call.
	DefaultPageSize = 20
	MaxPageSize     = 100

	// maxFilterValueLength caps free-text filter values.
	maxFilterValueLength = 120

	minGraduationYear = 1900
	maxGraduationYear = 2100
)

type SearchService interface {
	// SearchAlumni validates and normalizes the filter, then runs the
	// paginated query. An empty result set is a valid outcome.
	SearchAlumni(db *gorm.DB, req *dto.SearchAlumniRequest) (*dto.PaginatedResponse, error)
}

type searchServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewSearchService(profileRepo repositories.ProfileRepository) SearchService {
	return &searchServiceImpl{profileRepo: profileRepo}
}

func (s *searchServiceImpl) SearchAlumni(db *gorm.DB, req *dto.SearchAlumniRequest) (*dto.PaginatedResponse, error) {
	criteria, err := buildCriteria(req)
	if err != nil {
		return nil, err
	}

	profiles, total, err := s.profileRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]*dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		results = append(results, dto.NewProfileResponse(&profiles[i]))
	}

	return &dto.PaginatedResponse{
		Data:   results,
		Total:  total,
		Offset: criteria.Offset,
		Limit:  criteria.Limit,
	}, nil
}

// buildCriteria turns caller-supplied filter input into the typed
// criteria the repository binds as query parameters. Everything is
// checked here; the repository trusts its input.
func buildCriteria(req *dto.SearchAlumniRequest) (repositories.ProfileSearchCriteria, error) {
	var criteria repositories.ProfileSearchCriteria

	if req.YearFrom != nil || req.YearTo != nil {
		if req.YearFrom == nil || req.YearTo == nil {
			return criteria, apperrors.FilterError("graduation_year_range needs both bounds")
		}
		low, high := *req.YearFrom, *req.YearTo
		if low > high {
			return criteria, apperrors.FilterError(
				fmt.Sprintf("graduation_year_range low bound %d exceeds high bound %d", low, high))
		}
		if low < minGraduationYear || high > maxGraduationYear {
			return criteria, apperrors.FilterError(
				fmt.Sprintf("graduation_year_range must be within %d..%d", minGraduationYear, maxGraduationYear))
		}
		criteria.YearFrom = &low
		criteria.YearTo = &high
	}

	var err error
	if criteria.Major, err = sanitizeFilterValue("major", req.Major); err != nil {
		return criteria, err
	}
	if criteria.Location, err = sanitizeFilterValue("location", req.Location); err != nil {
		return criteria, err
	}
	if criteria.Employer, err = sanitizeFilterValue("employer", req.Employer); err != nil {
		return criteria, err
	}
	if criteria.Tag, err = sanitizeFilterValue("tag", req.Tag); err != nil {
		return criteria, err
	}

	if req.Offset < 0 {
		return criteria, apperrors.FilterError("offset must not be negative")
	}
	criteria.Offset = req.Offset

	criteria.Limit = req.Limit
	if criteria.Limit <= 0 {
		criteria.Limit = DefaultPageSize
	}
	if criteria.Limit > MaxPageSize {
		criteria.Limit = MaxPageSize
	}

	return criteria, nil
}

// sanitizeFilterValue trims, length-caps and strips control characters
// from a free-text filter value.
func sanitizeFilterValue(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if len(value) > maxFilterValueLength {
		return "", apperrors.FilterError(
			fmt.Sprintf("%s must be at most %d characters", key, maxFilterValueLength))
	}

	var b strings.Builder
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
