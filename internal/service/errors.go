package service

import "errors"

// Validation failures that abort before any backend call. Controllers map
// these to inline messages next to the triggering form.
var (
	ErrNotLoggedIn    = errors.New("You must be logged in")
	ErrTitleRequired  = errors.New("Title required")
	ErrAnswerRequired = errors.New("Please write an answer.")
)
