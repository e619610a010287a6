package model

import "errors"

var (
	// ErrInvalidMode is returned for an unknown convert or filter mode.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrMalformedRecord marks a JSONL line that could not be decoded.
	ErrMalformedRecord = errors.New("malformed record")
)
