package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/secmon-lab/blockrelay/pkg/domain/types"
)

// PageObservation holds what was read from the page after the action navigation
type PageObservation struct {
	FinalURL     string
	SuccessCount int
	ErrorCount   int
}

// ActionOutcome is the result of one relay invocation. It is immutable and
// its OK value is always derived from the observations.
type ActionOutcome struct {
	invocationID types.InvocationID
	action       types.Action
	subjectID    types.SubjectID
	reason       string
	success      bool
	failure      bool
	finalURL     string
	loginPath    string
	timestamp    time.Time
}

// NewActionOutcome builds an outcome from the request and the page observation.
// loginPath is the panel path whose presence in the final URL means the
// session was bounced back to the login form.
func NewActionOutcome(id types.InvocationID, req ActionRequest, obs PageObservation, loginPath string, at time.Time) *ActionOutcome {
	reason := ""
	if req.Action.RequiresReason() {
		reason = req.Reason
	}

	return &ActionOutcome{
		invocationID: id,
		action:       req.Action,
		subjectID:    req.SubjectID,
		reason:       reason,
		success:      obs.SuccessCount > 0,
		failure:      obs.ErrorCount > 0,
		finalURL:     obs.FinalURL,
		loginPath:    loginPath,
		timestamp:    at.UTC(),
	}
}

// OK reports whether the action is considered applied: no error marker was
// found and the final page is not the login page.
func (o *ActionOutcome) OK() bool {
	return !o.failure && !o.RedirectedToLogin()
}

// RedirectedToLogin reports whether the final URL points at the login page
func (o *ActionOutcome) RedirectedToLogin() bool {
	return o.loginPath != "" && strings.Contains(o.finalURL, o.loginPath)
}

// Ambiguous reports whether the page carried both success and error markers
func (o *ActionOutcome) Ambiguous() bool {
	return o.success && o.failure
}

// InvocationID returns the correlation ID of the invocation
func (o *ActionOutcome) InvocationID() types.InvocationID { return o.invocationID }

// Action returns the requested action
func (o *ActionOutcome) Action() types.Action { return o.action }

// SubjectID returns the subject the action was applied to
func (o *ActionOutcome) SubjectID() types.SubjectID { return o.subjectID }

// Reason returns the reason sent with add, empty for remove
func (o *ActionOutcome) Reason() string { return o.reason }

// SuccessIndicatorFound reports whether a success marker was on the page
func (o *ActionOutcome) SuccessIndicatorFound() bool { return o.success }

// ErrorIndicatorFound reports whether an error marker was on the page
func (o *ActionOutcome) ErrorIndicatorFound() bool { return o.failure }

// FinalURL returns the page URL after the action navigation settled
func (o *ActionOutcome) FinalURL() string { return o.finalURL }

// Timestamp returns the completion instant in UTC
func (o *ActionOutcome) Timestamp() time.Time { return o.timestamp }

type actionOutcomeJSON struct {
	OK                    bool    `json:"ok"`
	Action                string  `json:"action"`
	GUID                  string  `json:"guid"`
	Reason                *string `json:"reason"`
	SuccessIndicatorFound bool    `json:"successIndicatorFound"`
	ErrorIndicatorFound   bool    `json:"errorIndicatorFound"`
	Ambiguous             bool    `json:"ambiguous"`
	FinalURL              string  `json:"finalUrl"`
	Timestamp             string  `json:"timestamp"`
	InvocationID          string  `json:"invocationId"`
}

// MarshalJSON encodes the outcome in the relay's response shape.
// Reason is null when the action does not carry one.
func (o *ActionOutcome) MarshalJSON() ([]byte, error) {
	var reason *string
	if o.reason != "" {
		r := o.reason
		reason = &r
	}

	return json.Marshal(actionOutcomeJSON{
		OK:                    o.OK(),
		Action:                o.action.String(),
		GUID:                  o.subjectID.String(),
		Reason:                reason,
		SuccessIndicatorFound: o.success,
		ErrorIndicatorFound:   o.failure,
		Ambiguous:             o.Ambiguous(),
		FinalURL:              o.finalURL,
		Timestamp:             o.timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		InvocationID:          o.invocationID.String(),
	})
}
