package service

import "errors"

var (
	ErrInternal              = errors.New("internal server error")
	ErrItemNotFound          = errors.New("item not found")
	ErrUnknownAuthor         = errors.New("author does not reference a known user")
	ErrEngagementUnsupported = errors.New("items of this kind cannot be clapped")
)
