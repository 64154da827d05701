package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"alumnihub_backend/internal/services"
	"alumnihub_backend/internal/services/dto"
	"alumnihub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// recognizedSearchKeys is the full query surface of the search endpoint.
// Anything else in the query string is rejected rather than ignored, so
// a misspelled filter never silently returns the unfiltered set.
var recognizedSearchKeys = map[string]bool{
	"graduation_year_range": true,
	"major":                 true,
	"location":              true,
	"employer":              true,
	"tag":                   true,
	"offset":                true,
	"limit":                 true,
}

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) SearchAlumni(c *gin.Context) {
	req, err := parseSearchQuery(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	result, err := h.searchService.SearchAlumni(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseSearchQuery(c *gin.Context) (*dto.SearchAlumniRequest, error) {
	for key, values := range c.Request.URL.Query() {
		if !recognizedSearchKeys[key] {
			return nil, apperrors.FilterError("Unknown filter: " + key)
		}
		if len(values) > 1 {
			return nil, apperrors.FilterError("Filter given more than once: " + key)
		}
	}

	req := &dto.SearchAlumniRequest{
		Major:    c.Query("major"),
		Location: c.Query("location"),
		Employer: c.Query("employer"),
		Tag:      c.Query("tag"),
	}

	if raw := c.Query("graduation_year_range"); raw != "" {
		from, to, err := parseYearRange(raw)
		if err != nil {
			return nil, err
		}
		req.YearFrom = from
		req.YearTo = to
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperrors.FilterError("offset must be an integer")
		}
		req.Offset = offset
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperrors.FilterError("limit must be an integer")
		}
		req.Limit = limit
	}

	return req, nil
}

// parseYearRange accepts "low,high" or a single year meaning an exact
// match. Ordering of the bounds is checked downstream with the rest of
// the criteria.
func parseYearRange(raw string) (*int, *int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > 2 {
		return nil, nil, apperrors.FilterError("graduation_year_range must be \"low,high\" or a single year")
	}

	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, nil, apperrors.FilterError("graduation_year_range bounds must be integers")
	}

	high := low
	if len(parts) == 2 {
		high, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, nil, apperrors.FilterError("graduation_year_range bounds must be integers")
		}
	}

	return &low, &high, nil
}
