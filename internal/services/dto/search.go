package dto

// SearchAlumniRequest is the parsed form of the search query string.
// Year bounds are pointers so "no bound" and "bound 0" stay distinct.
type SearchAlumniRequest struct {
	YearFrom *int
	YearTo   *int
	Major    string
	Location string
	Employer string
	Tag      string
	Offset   int
	Limit    int
}
