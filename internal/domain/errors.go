package domain

import "errors"

// Record errors.
var (
	ErrMissingUserID = errors.New("record has no userId")
)

// Infrastructure errors.
var (
	ErrCacheUnavailable     = errors.New("cache store unavailable")
	ErrDirectoryUnavailable = errors.New("member directory unavailable")
)
