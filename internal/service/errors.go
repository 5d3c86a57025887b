package service

import "errors"

var (
	ErrInvalidPostID = errors.New("invalid post id")
	ErrInvalidDraft  = errors.New("invalid post draft")
	ErrInvalidPatch  = errors.New("invalid post patch")
)
