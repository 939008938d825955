package dto

import "time"

// BasicResponse is the envelope for every non-content answer: acknowledgements and errors.
type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// NewErrorResponse exposes only the sentinel message; wrapped causes stay in the logs.
func NewErrorResponse(err error) BasicResponse {
	return NewBasicResponse(false, err.Error())
}
