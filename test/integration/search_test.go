package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"alumnihub_backend/internal/models"
	"alumnihub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResult struct {
	Data []struct {
		UserID         string   `json:"user_id"`
		GraduationYear int      `json:"graduation_year"`
		Major          string   `json:"major"`
		Employer       string   `json:"employer"`
		Location       string   `json:"location"`
		Tags           []string `json:"tags"`
	} `json:"data"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// seedAlumnus creates a user plus a filled-in profile, bypassing the API.
func seedAlumnus(t *testing.T, ts *helpers.TestServer, year int, major, location, employer string, tags ...string) *models.AlumniProfile {
	t.Helper()

	user := &models.User{
		Email:        fmt.Sprintf("seed_%d_%d@test.com", year, time.Now().UnixNano()),
		PasswordHash: "sturdy-password-1",
		Role:         models.UserRoleAlumni,
	}
	helpers.CreateUser(t, ts.DB, user)

	profile := &models.AlumniProfile{
		UserID:         user.ID,
		FirstName:      "Seed",
		LastName:       fmt.Sprintf("Year%d", year),
		GraduationYear: year,
		Major:          major,
		Location:       location,
		Employer:       employer,
	}
	for _, tag := range tags {
		profile.Tags = append(profile.Tags, models.ProfileTag{Tag: tag})
	}
	helpers.CreateProfile(t, ts.DB, profile)
	return profile
}

func search(t *testing.T, ts *helpers.TestServer, token string, params url.Values) (*http.Response, string) {
	t.Helper()
	path := "/api/v1/alumni/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return ts.SendRequest(t, http.MethodGet, path, token, nil)
}

func TestSearchByYearRange(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	seedAlumnus(t, ts, 2008, "History", "Boston", "Archive Co")
	seedAlumnus(t, ts, 2012, "Physics", "Boston", "Lab Inc")
	seedAlumnus(t, ts, 2015, "Physics", "Denver", "Lab Inc")
	seedAlumnus(t, ts, 2020, "Biology", "Boston", "BioWorks")

	res, body := search(t, ts, token, url.Values{"graduation_year_range": {"2012,2015"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Equal(t, int64(2), result.Total)
	require.Len(t, result.Data, 2)

	// Newest graduates come first.
	assert.Equal(t, 2015, result.Data[0].GraduationYear)
	assert.Equal(t, 2012, result.Data[1].GraduationYear)
}

func TestSearchSingleYear(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	seedAlumnus(t, ts, 2012, "Physics", "Boston", "Lab Inc")
	seedAlumnus(t, ts, 2013, "Physics", "Boston", "Lab Inc")

	res, body := search(t, ts, token, url.Values{"graduation_year_range": {"2012"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, int64(1), result.Total)
}

func TestSearchTextFiltersAreCaseInsensitive(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	seedAlumnus(t, ts, 2012, "Computer Science", "Boston", "Initech")
	seedAlumnus(t, ts, 2014, "History", "Boston", "Archive Co")

	res, body := search(t, ts, token, url.Values{"major": {"computer"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Equal(t, int64(1), result.Total)
	assert.Equal(t, "Computer Science", result.Data[0].Major)

	// Substring match, upper-cased input.
	res, body = search(t, ts, token, url.Values{"employer": {"INITECH"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, int64(1), result.Total)
}

func TestSearchByTag(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	seedAlumnus(t, ts, 2012, "Physics", "Boston", "Lab Inc", "mentoring", "robotics")
	seedAlumnus(t, ts, 2014, "Physics", "Boston", "Lab Inc", "sailing")

	res, body := search(t, ts, token, url.Values{"tag": {"Mentoring"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Equal(t, int64(1), result.Total)
	assert.Contains(t, result.Data[0].Tags, "mentoring")
}

func TestSearchCombinedFilters(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	seedAlumnus(t, ts, 2012, "Physics", "Boston", "Lab Inc")
	seedAlumnus(t, ts, 2012, "Physics", "Denver", "Lab Inc")
	seedAlumnus(t, ts, 2018, "Physics", "Boston", "Lab Inc")

	res, body := search(t, ts, token, url.Values{
		"graduation_year_range": {"2010,2015"},
		"location":              {"boston"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, int64(1), result.Total)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	res, body := search(t, ts, token, url.Values{"major": {"underwater basket weaving"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, int64(0), result.Total)
	assert.Empty(t, result.Data)
}

func TestSearchPaginationIsDeterministic(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	for year := 2001; year <= 2005; year++ {
		seedAlumnus(t, ts, year, "Physics", "Boston", "Lab Inc")
	}

	var seen []string
	for offset := 0; offset < 5; offset += 2 {
		res, body := search(t, ts, token, url.Values{
			"offset": {fmt.Sprint(offset)},
			"limit":  {"2"},
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var result searchResult
		require.NoError(t, json.Unmarshal([]byte(body), &result))
		assert.Equal(t, int64(5), result.Total)
		for _, p := range result.Data {
			seen = append(seen, p.UserID)
		}
	}

	// Walking the pages yields each profile exactly once.
	require.Len(t, seen, 5)
	unique := make(map[string]bool)
	for _, id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 5)
}

func TestSearchRejectsUnknownFilter(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	res, body := search(t, ts, token, url.Values{"graduation_yaer": {"2012"}})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "INVALID_FILTER")
}

func TestSearchRejectsMalformedInput(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	cases := []url.Values{
		{"graduation_year_range": {"abc,2015"}},
		{"graduation_year_range": {"2015,2010"}},
		{"graduation_year_range": {"2010,2012,2014"}},
		{"offset": {"-1"}},
		{"limit": {"nope"}},
	}
	for _, params := range cases {
		res, body := search(t, ts, token, params)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "params %v: %s", params, body)
		assert.Contains(t, body, "INVALID_FILTER", "params %v", params)
	}
}

func TestSearchRequiresAuthentication(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := search(t, ts, "", url.Values{})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
