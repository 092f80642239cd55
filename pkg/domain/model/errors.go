package model

import "github.com/m-mizutani/goerr/v2"

// ErrTagValidation marks errors caused by invalid caller input
var ErrTagValidation = goerr.NewTag("validation")

// Sentinel errors for request validation
var (
	ErrMissingSubject = goerr.New("Missing guid", goerr.T(ErrTagValidation))
	ErrMissingReason  = goerr.New("Missing reason", goerr.T(ErrTagValidation))
	ErrInvalidAction  = goerr.New("invalid action", goerr.T(ErrTagValidation))
)
