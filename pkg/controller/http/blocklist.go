package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
	"github.com/secmon-lab/blockrelay/pkg/domain/types"
	"github.com/secmon-lab/blockrelay/pkg/usecase"
	"github.com/secmon-lab/blockrelay/pkg/utils/apperr"
)

const maxBodyBytes = 64 << 10

var errInvalidBody = goerr.New("invalid JSON body", goerr.T(model.ErrTagValidation))

// BlocklistHandler serves POST /add and POST /remove
type BlocklistHandler struct {
	blocklistUC usecase.BlocklistUseCase
}

// NewBlocklistHandler creates a new blocklist handler
func NewBlocklistHandler(blocklistUC usecase.BlocklistUseCase) *BlocklistHandler {
	return &BlocklistHandler{blocklistUC: blocklistUC}
}

// actionBody is the request body of both endpoints. reason is ignored by /remove.
type actionBody struct {
	GUID   looseString `json:"guid"`
	Reason looseString `json:"reason"`
}

// looseString accepts any JSON scalar. Falsy values (null, false, 0, "")
// become empty and other scalars keep their literal text, so a numeric guid
// is relayed as typed.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case '{', '[':
		return goerr.New("expected a scalar value")
	default:
		switch v := string(data); v {
		case "null", "false", "0":
			*s = ""
		default:
			var n json.Number
			if v != "true" {
				if err := json.Unmarshal(data, &n); err != nil {
					return err
				}
				if f, err := n.Float64(); err == nil && f == 0 {
					*s = ""
					return nil
				}
			}
			*s = looseString(v)
		}
	}
	return nil
}

// HandleAdd handles POST /add
func (h *BlocklistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, types.ActionAdd)
}

// HandleRemove handles POST /remove
func (h *BlocklistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, types.ActionRemove)
}

func (h *BlocklistHandler) handle(w http.ResponseWriter, r *http.Request, action types.Action) {
	ctx := r.Context()

	body, err := decodeActionBody(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: errInvalidBody.Error()})
		return
	}

	req := model.ActionRequest{
		Action:    action,
		SubjectID: types.SubjectID(body.GUID),
		Reason:    string(body.Reason),
	}.Normalize()

	// Reject before the use case so no browser session is opened
	if err := req.Validate(); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: validationMessage(err)})
		return
	}

	outcome, err := h.blocklistUC.Execute(ctx, req)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagValidation) {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: validationMessage(err)})
			return
		}

		apperr.Handle(ctx, err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{
			Action: action.String(),
			GUID:   req.SubjectID.String(),
			Error:  apperr.Cause(err).Error(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, outcome)
}

type errorResponse struct {
	OK     bool   `json:"ok"`
	Action string `json:"action,omitempty"`
	GUID   string `json:"guid,omitempty"`
	Error  string `json:"error"`
}

// decodeActionBody reads the JSON body. An empty body reads as an empty object.
func decodeActionBody(r *http.Request) (*actionBody, error) {
	var body actionBody
	if r.Body == nil {
		return &body, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &body, nil
	}

	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, goerr.Wrap(err, "failed to decode request body")
	}
	return &body, nil
}

// validationMessage returns the client facing message of a validation error
func validationMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingSubject):
		return model.ErrMissingSubject.Error()
	case errors.Is(err, model.ErrMissingReason):
		return model.ErrMissingReason.Error()
	}

	if goErr := goerr.Unwrap(err); goErr != nil {
		return strings.TrimSpace(goErr.Error())
	}
	return err.Error()
}
