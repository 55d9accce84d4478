package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Member errors
	ErrMemberNotFound    = errors.New("member not found")
	ErrBanReasonRequired = errors.New("ban reason is required")
	ErrBanUntilRequired  = errors.New("ban end date is required")

	// Board errors
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReportNotFound  = errors.New("report not found")

	// QnA errors
	ErrQnANotFound       = errors.New("inquiry not found")
	ErrQnAAnswerRequired = errors.New("answer subject and content are required")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Validation errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidSearchType = errors.New("invalid search type")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrEmptyIDList       = errors.New("id list is empty")
)
