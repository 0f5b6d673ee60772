package types

import "errors"

// Entity errors.
var (
	ErrProblemIDInvalid = errors.New("problem id must be a non-negative integer")
	ErrNotFound         = errors.New("problem not found in index")
	ErrTableAbsent      = errors.New("index table not found")
)

// Favorites store errors.
var (
	ErrAlreadyFavorite = errors.New("problem is already a favorite")
	ErrNotFavorite     = errors.New("problem is not a favorite")
	ErrStoreDetached   = errors.New("favorites store is detached")
	ErrAlreadyAttached = errors.New("favorites store is already attached")
)
