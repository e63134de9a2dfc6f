package storage

import "errors"

// Common storage errors
var (
	// ErrPostNotFound indicates that post was not found in storage
	ErrPostNotFound = errors.New("post not found")

	// ErrPostAlreadyExists indicates that post with this id already exists
	ErrPostAlreadyExists = errors.New("post already exists")
)
