package activity

import "context"

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListActivityRequest is the request for the list-activity service.
type ListActivityRequest struct {
	Limit int `json:"limit"`
}

// ListActivityResponse holds the newest entries first.
type ListActivityResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// ActivityPort is the read side of the activity feed used by other modules.
type ActivityPort interface {
	ListActivity(ctx context.Context, limit int) (*ListActivityResponse, error)
}

// clampLimit applies the default and upper bound to a requested limit.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
