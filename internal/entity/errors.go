package entity

import "errors"

var (
	// Invocation errors
	ErrInvalidArgs = errors.New("invalid arguments")

	// Pipeline errors
	ErrImageLoad    = errors.New("cannot decode product image")
	ErrAssetMissing = errors.New("asset missing or unreadable")
	ErrWrite        = errors.New("cannot write output image")
)
