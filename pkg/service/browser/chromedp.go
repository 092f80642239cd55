package browser

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces"
)

// ChromedpConnector connects to a remote Chromium over CDP using chromedp
type ChromedpConnector struct {
	endpoint string
	timeout  time.Duration
}

// NewChromedp creates a new chromedp connector
func NewChromedp(opts Options) *ChromedpConnector {
	return &ChromedpConnector{
		endpoint: opts.Endpoint,
		timeout:  opts.Timeout,
	}
}

// Connect allocates a remote browser connection. Websocket endpoints are used
// as given; HTTP endpoints are resolved through /json/version by chromedp.
func (c *ChromedpConnector) Connect(ctx context.Context) (interfaces.Browser, error) {
	var allocOpts []chromedp.RemoteAllocatorOption
	if u, err := url.Parse(c.endpoint); err == nil && (u.Scheme == "ws" || u.Scheme == "wss") {
		allocOpts = append(allocOpts, chromedp.NoModifyURL)
	}

	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, c.endpoint, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// An empty Run establishes the connection
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, goerr.Wrap(err, "failed to connect over CDP", goerr.V("driver", DriverChromedp))
	}

	return &chromedpBrowser{
		ctx:           browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		timeout:       c.timeout,
	}, nil
}

// Close is a no-op; chromedp holds no process-wide resources
func (c *ChromedpConnector) Close() error {
	return nil
}

// chromedpBrowser is one connection to a Chromium that other clients may
// share. It never sends Browser.close.
type chromedpBrowser struct {
	ctx           context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	timeout       time.Duration
}

func (b *chromedpBrowser) NewContext(ctx context.Context) (interfaces.BrowsingContext, error) {
	tabCtx, cancel := chromedp.NewContext(b.ctx, chromedp.WithNewBrowserContext())
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, goerr.Wrap(err, "failed to create browser context")
	}
	return &chromedpContext{ctx: tabCtx, cancel: cancel, timeout: b.timeout}, nil
}

// Close releases the tab this connection opened and drops the websocket.
// chromedp.Cancel is not used here because on the first context it shuts the
// whole remote browser down.
func (b *chromedpBrowser) Close() error {
	closeTab := func() error {
		return chromedp.Run(b.ctx, page.Close())
	}
	return releaseConnection(closeTab, b.browserCancel, b.allocCancel)
}

// releaseConnection closes the connection's own tab, then detaches the
// session, then drops the allocator. The cancels always run.
func releaseConnection(closeTab func() error, browserCancel, allocCancel context.CancelFunc) error {
	defer allocCancel()
	defer browserCancel()

	if err := closeTab(); err != nil && !errors.Is(err, context.Canceled) {
		return goerr.Wrap(err, "failed to close connection tab", goerr.V("driver", DriverChromedp))
	}
	return nil
}

// chromedpContext owns exactly one target; chromedp binds a page to the
// context that created it.
type chromedpContext struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	opened  bool
}

func (c *chromedpContext) NewPage(ctx context.Context) (interfaces.Page, error) {
	if c.opened {
		return nil, goerr.New("chromedp browsing context supports a single page")
	}
	c.opened = true
	return &chromedpPage{ctx: c.ctx, timeout: c.timeout}, nil
}

func (c *chromedpContext) Close() error {
	defer c.cancel()
	if err := chromedp.Cancel(c.ctx); err != nil && !errors.Is(err, context.Canceled) {
		return goerr.Wrap(err, "failed to close browser context")
	}
	return nil
}

type chromedpPage struct {
	ctx     context.Context
	timeout time.Duration
}

// run executes actions on the page target. ctx is the caller's context and
// only gates the start; the target lives in the page's own chromedp context.
func (p *chromedpPage) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runCtx := p.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(p.ctx, p.timeout)
		defer cancel()
	}

	return chromedp.Run(runCtx, actions...)
}

func (p *chromedpPage) Navigate(ctx context.Context, url string) error {
	if err := p.run(ctx, chromedp.Navigate(url)); err != nil {
		return goerr.Wrap(err, "navigation failed", goerr.V("url", url))
	}
	return nil
}

func (p *chromedpPage) Fill(ctx context.Context, selector, value string) error {
	if err := p.run(ctx, chromedp.SetValue(selector, value, chromedp.ByQuery)); err != nil {
		return goerr.Wrap(err, "fill failed", goerr.V("selector", selector))
	}
	return nil
}

func (p *chromedpPage) Click(ctx context.Context, selector string) error {
	if err := p.run(ctx, chromedp.Click(selector, chromedp.ByQuery)); err != nil {
		return goerr.Wrap(err, "click failed", goerr.V("selector", selector))
	}
	return nil
}

func (p *chromedpPage) URL(ctx context.Context) (string, error) {
	var location string
	if err := p.run(ctx, chromedp.Location(&location)); err != nil {
		return "", goerr.Wrap(err, "failed to read page URL")
	}
	return location, nil
}

func (p *chromedpPage) Count(ctx context.Context, selector string) (int, error) {
	quoted, err := json.Marshal(selector)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to quote selector", goerr.V("selector", selector))
	}

	var n int
	script := "document.querySelectorAll(" + string(quoted) + ").length"
	if err := p.run(ctx, chromedp.Evaluate(script, &n)); err != nil {
		return 0, goerr.Wrap(err, "failed to count elements", goerr.V("selector", selector))
	}
	return n, nil
}

func (p *chromedpPage) Wait(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}
