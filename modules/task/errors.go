package task

import "errors"

var (
	// ErrTaskNotFound is returned by callers that need an error for an unknown id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTitleRequired is returned by callers that reject a blank title.
	ErrTitleRequired = errors.New("title is required")
)
