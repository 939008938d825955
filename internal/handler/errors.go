package handler

import "errors"

var (
	errNotAuthorized      = errors.New("user is not authorized")
	errInvalidCredentials = errors.New("invalid credentials")
	errNoAccess           = errors.New("no access")
	errInvalidID          = errors.New("invalid ID")
)
