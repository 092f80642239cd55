package usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
	"github.com/secmon-lab/blockrelay/pkg/domain/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("usecase/blocklist")

// Blocklist relays blocklist changes to the panel through a browser session
type Blocklist struct {
	connector interfaces.BrowserConnector
	config    *BlocklistConfig
	now       func() time.Time
}

// NewBlocklist creates a new Blocklist use case
func NewBlocklist(connector interfaces.BrowserConnector, config *BlocklistConfig) *Blocklist {
	return &Blocklist{
		connector: connector,
		config:    config,
		now:       time.Now,
	}
}

// Add adds subject to the blocklist with reason as context
func (uc *Blocklist) Add(ctx context.Context, subject types.SubjectID, reason string) (*model.ActionOutcome, error) {
	return uc.Execute(ctx, model.ActionRequest{Action: types.ActionAdd, SubjectID: subject, Reason: reason})
}

// Remove removes subject from the blocklist
func (uc *Blocklist) Remove(ctx context.Context, subject types.SubjectID) (*model.ActionOutcome, error) {
	return uc.Execute(ctx, model.ActionRequest{Action: types.ActionRemove, SubjectID: subject})
}

// Execute validates req, then logs into the panel, navigates to the action URL
// and interprets the resulting page. An error is returned only when the
// interaction itself failed; a rejected action is an outcome with OK() false.
func (uc *Blocklist) Execute(ctx context.Context, req model.ActionRequest) (*model.ActionOutcome, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	invocationID := types.NewInvocationID()
	logger := ctxlog.From(ctx).With(
		"invocation_id", invocationID,
		"action", req.Action,
		"guid", req.SubjectID,
	)
	ctx = ctxlog.With(ctx, logger)

	if uc.config.actionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.config.actionTimeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "Blocklist.Execute", trace.WithAttributes(
		attribute.String("invocation_id", invocationID.String()),
		attribute.String("action", req.Action.String()),
	))
	defer span.End()

	outcome, err := uc.execute(ctx, invocationID, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "blocklist action failed")
		return nil, goerr.Wrap(err, "blocklist action failed",
			goerr.V("invocation_id", invocationID),
			goerr.V("action", req.Action),
			goerr.V("guid", req.SubjectID))
	}

	span.SetAttributes(attribute.Bool("ok", outcome.OK()))
	logger.Info("blocklist action completed",
		"ok", outcome.OK(),
		"success_indicator", outcome.SuccessIndicatorFound(),
		"error_indicator", outcome.ErrorIndicatorFound(),
		"final_url", outcome.FinalURL(),
	)
	if outcome.Ambiguous() {
		logger.Warn("page carries both success and error markers", "final_url", outcome.FinalURL())
	}

	return outcome, nil
}

func (uc *Blocklist) execute(ctx context.Context, invocationID types.InvocationID, req model.ActionRequest) (*model.ActionOutcome, error) {
	page, release, err := uc.openSession(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.login(ctx, page); err != nil {
		return nil, err
	}

	if err := uc.dispatch(ctx, page, req); err != nil {
		return nil, err
	}

	obs, err := uc.interpret(ctx, page)
	if err != nil {
		return nil, err
	}

	return model.NewActionOutcome(invocationID, req, obs, uc.config.profile.LoginPath, uc.now()), nil
}

// openSession connects to the browser and opens an isolated context with one
// page. The returned release closes the context then the connection; it is
// safe to defer and never fails.
func (uc *Blocklist) openSession(ctx context.Context) (interfaces.Page, func(), error) {
	browser, err := uc.connector.Connect(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to connect to remote browser")
	}

	bctx, err := browser.NewContext(ctx)
	if err != nil {
		closeResource(ctx, "connection", browser)
		return nil, nil, goerr.Wrap(err, "failed to open browsing context")
	}

	release := func() {
		closeResource(ctx, "browsing context", bctx)
		closeResource(ctx, "connection", browser)
	}

	page, err := bctx.NewPage(ctx)
	if err != nil {
		release()
		return nil, nil, goerr.Wrap(err, "failed to open page")
	}

	return page, release, nil
}

// closeResource closes r and logs a failure instead of returning it, so a
// release problem never replaces the invocation's own result.
func closeResource(ctx context.Context, kind string, r interface{ Close() error }) {
	if err := r.Close(); err != nil {
		ctxlog.From(ctx).Warn("failed to release browser resource",
			"resource", kind,
			"error", err,
		)
	}
}

// login submits the panel login form. Whether it succeeded is only known
// later from the final URL.
func (uc *Blocklist) login(ctx context.Context, page interfaces.Page) error {
	ctx, span := tracer.Start(ctx, "Blocklist.login")
	defer span.End()

	profile := uc.config.profile
	loginURL := uc.config.LoginURL()

	if err := page.Navigate(ctx, loginURL); err != nil {
		return goerr.Wrap(err, "failed to open login page", goerr.V("url", loginURL))
	}
	if err := page.Fill(ctx, profile.UsernameSelector, uc.config.username); err != nil {
		return goerr.Wrap(err, "failed to fill username")
	}
	if err := page.Fill(ctx, profile.PasswordSelector, uc.config.password); err != nil {
		return goerr.Wrap(err, "failed to fill password")
	}
	if err := page.Click(ctx, profile.SubmitSelector); err != nil {
		return goerr.Wrap(err, "failed to submit login form")
	}
	if err := page.Wait(ctx, uc.config.loginSettleDelay); err != nil {
		return err
	}

	ctxlog.From(ctx).Debug("login form submitted", "url", loginURL)
	return nil
}

// dispatch navigates to the action URL
func (uc *Blocklist) dispatch(ctx context.Context, page interfaces.Page, req model.ActionRequest) error {
	ctx, span := tracer.Start(ctx, "Blocklist.dispatch")
	defer span.End()

	target, err := BuildActionURL(uc.config.baseURL, uc.config.profile, req)
	if err != nil {
		return err
	}

	if err := page.Navigate(ctx, target); err != nil {
		return goerr.Wrap(err, "failed to navigate to action URL")
	}
	if err := page.Wait(ctx, uc.config.navigateSettleDelay); err != nil {
		return err
	}

	return nil
}

// interpret reads the final URL and marker counts of the page
func (uc *Blocklist) interpret(ctx context.Context, page interfaces.Page) (model.PageObservation, error) {
	ctx, span := tracer.Start(ctx, "Blocklist.interpret")
	defer span.End()

	var obs model.PageObservation
	var err error

	if obs.FinalURL, err = page.URL(ctx); err != nil {
		return obs, goerr.Wrap(err, "failed to read final URL")
	}
	if obs.SuccessCount, err = page.Count(ctx, uc.config.profile.SuccessSelector); err != nil {
		return obs, goerr.Wrap(err, "failed to count success markers")
	}
	if obs.ErrorCount, err = page.Count(ctx, uc.config.profile.ErrorSelector); err != nil {
		return obs, goerr.Wrap(err, "failed to count error markers")
	}

	return obs, nil
}

// BuildActionURL returns {base}{blocklist path}?action=..&guid=..[&context=..].
// context is only present for actions that carry a reason.
func BuildActionURL(baseURL string, profile model.PanelProfile, req model.ActionRequest) (string, error) {
	u, err := url.Parse(baseURL + profile.BlocklistPath)
	if err != nil {
		return "", goerr.Wrap(err, "invalid action URL", goerr.V("base_url", baseURL))
	}

	query := "action=" + url.QueryEscape(req.Action.String()) +
		"&guid=" + url.QueryEscape(req.SubjectID.String())
	if req.Action.RequiresReason() {
		query += "&context=" + url.QueryEscape(req.Reason)
	}
	u.RawQuery = query

	return u.String(), nil
}
