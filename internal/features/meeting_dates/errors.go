package meeting_dates

import "errors"

var (
	ErrMeetingDateNotFound = errors.New("meeting date not found")
	ErrDateProjectMissing  = errors.New("meeting date does not belong to an existing project")
	ErrInvalidDate         = errors.New("invalid date")
)
