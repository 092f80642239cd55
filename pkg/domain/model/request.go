package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/types"
)

// ActionRequest is a caller's request to change the panel blocklist
type ActionRequest struct {
	Action    types.Action
	SubjectID types.SubjectID
	Reason    string
}

// Normalize trims surrounding whitespace and drops the reason for actions that ignore it
func (r ActionRequest) Normalize() ActionRequest {
	r.SubjectID = types.SubjectID(strings.TrimSpace(r.SubjectID.String()))
	r.Reason = strings.TrimSpace(r.Reason)
	if !r.Action.RequiresReason() {
		r.Reason = ""
	}
	return r
}

// Validate checks the request before any remote interaction takes place
func (r ActionRequest) Validate() error {
	if !r.Action.IsValid() {
		return goerr.Wrap(ErrInvalidAction, "unsupported action",
			goerr.V("action", r.Action),
			goerr.T(ErrTagValidation))
	}
	if r.SubjectID == "" {
		return ErrMissingSubject
	}
	if r.Action.RequiresReason() && r.Reason == "" {
		return ErrMissingReason
	}
	return nil
}
