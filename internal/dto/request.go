package dto

// SearchEventsRequest carries the optional search filters from the query
// string. All fields are optional; an empty field imposes no constraint.
type SearchEventsRequest struct {
	Date       string `query:"date"`
	Location   string `query:"location"`
	CategoryID string `query:"categoryId"`
}
