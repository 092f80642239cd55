package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
	"github.com/secmon-lab/blockrelay/pkg/domain/types"
)

func TestActionRequest_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		req     model.ActionRequest
		wantErr error
	}{
		{
			name: "valid add",
			req:  model.ActionRequest{Action: types.ActionAdd, SubjectID: "ABC-123", Reason: "cheating"},
		},
		{
			name: "valid remove without reason",
			req:  model.ActionRequest{Action: types.ActionRemove, SubjectID: "ABC-123"},
		},
		{
			name:    "add without reason",
			req:     model.ActionRequest{Action: types.ActionAdd, SubjectID: "ABC-123"},
			wantErr: model.ErrMissingReason,
		},
		{
			name:    "add with blank reason",
			req:     model.ActionRequest{Action: types.ActionAdd, SubjectID: "ABC-123", Reason: "   "},
			wantErr: model.ErrMissingReason,
		},
		{
			name:    "remove without subject",
			req:     model.ActionRequest{Action: types.ActionRemove},
			wantErr: model.ErrMissingSubject,
		},
		{
			name:    "whitespace subject",
			req:     model.ActionRequest{Action: types.ActionRemove, SubjectID: " \t"},
			wantErr: model.ErrMissingSubject,
		},
		{
			name:    "unknown action",
			req:     model.ActionRequest{Action: "purge", SubjectID: "ABC-123"},
			wantErr: model.ErrInvalidAction,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Normalize().Validate()
			if tc.wantErr == nil {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.True(t, errors.Is(err, tc.wantErr))
			gt.B(t, goerr.HasTag(err, model.ErrTagValidation)).True()
		})
	}
}

func TestActionRequest_Normalize(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		req := model.ActionRequest{Action: types.ActionAdd, SubjectID: "  ABC-123 ", Reason: " cheating\n"}.Normalize()
		gt.Equal(t, req.SubjectID, types.SubjectID("ABC-123"))
		gt.Equal(t, req.Reason, "cheating")
	})

	t.Run("drops reason for remove", func(t *testing.T) {
		req := model.ActionRequest{Action: types.ActionRemove, SubjectID: "ABC-123", Reason: "cheating"}.Normalize()
		gt.Equal(t, req.Reason, "")
	})
}
