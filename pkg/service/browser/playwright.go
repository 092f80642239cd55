package browser

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/playwright-community/playwright-go"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces"
)

// PlaywrightConnector connects to a remote Chromium over CDP using playwright-go.
// The Playwright driver process is started once and shared; every Connect
// opens its own CDP connection.
type PlaywrightConnector struct {
	mu       sync.Mutex
	pw       *playwright.Playwright
	endpoint string
	timeout  time.Duration
}

// NewPlaywright creates a new playwright connector
func NewPlaywright(opts Options) *PlaywrightConnector {
	return &PlaywrightConnector{
		endpoint: opts.Endpoint,
		timeout:  opts.Timeout,
	}
}

// Initialize installs and starts the Playwright driver. Browsers are not
// installed because pages run on the remote endpoint.
func (c *PlaywrightConnector) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pw != nil {
		return nil
	}

	opts := &playwright.RunOptions{
		SkipInstallBrowsers: true,
		Verbose:             false,
		Stdout:              io.Discard,
		Stderr:              io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return goerr.Wrap(err, "failed to install playwright driver")
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return goerr.Wrap(err, "failed to start playwright driver")
	}

	c.pw = pw
	return nil
}

// Connect opens a new CDP connection to the remote browser
func (c *PlaywrightConnector) Connect(ctx context.Context) (interfaces.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "context done before connecting")
	}
	if err := c.Initialize(); err != nil {
		return nil, err
	}

	opts := playwright.BrowserTypeConnectOverCDPOptions{}
	if c.timeout > 0 {
		opts.Timeout = playwright.Float(float64(c.timeout.Milliseconds()))
	}

	browser, err := c.pw.Chromium.ConnectOverCDP(c.endpoint, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect over CDP", goerr.V("driver", DriverPlaywright))
	}

	return &playwrightBrowser{browser: browser, timeout: c.timeout}, nil
}

// Close stops the Playwright driver
func (c *PlaywrightConnector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pw == nil {
		return nil
	}

	pw := c.pw
	c.pw = nil
	if err := pw.Stop(); err != nil {
		return goerr.Wrap(err, "failed to stop playwright driver")
	}
	return nil
}

type playwrightBrowser struct {
	browser playwright.Browser
	timeout time.Duration
}

func (b *playwrightBrowser) NewContext(ctx context.Context) (interfaces.BrowsingContext, error) {
	bctx, err := b.browser.NewContext()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create browser context")
	}
	return &playwrightContext{context: bctx, timeout: b.timeout}, nil
}

func (b *playwrightBrowser) Close() error {
	if err := b.browser.Close(); err != nil {
		return goerr.Wrap(err, "failed to close browser connection")
	}
	return nil
}

type playwrightContext struct {
	context playwright.BrowserContext
	timeout time.Duration
}

func (c *playwrightContext) NewPage(ctx context.Context) (interfaces.Page, error) {
	page, err := c.context.NewPage()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create page")
	}

	if c.timeout > 0 {
		page.SetDefaultTimeout(float64(c.timeout.Milliseconds()))
		page.SetDefaultNavigationTimeout(float64(c.timeout.Milliseconds()))
	}

	return &playwrightPage{page: page}, nil
}

func (c *playwrightContext) Close() error {
	if err := c.context.Close(); err != nil {
		return goerr.Wrap(err, "failed to close browser context")
	}
	return nil
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "context done before navigation")
	}

	waitUntil := playwright.WaitUntilState("domcontentloaded")
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{WaitUntil: &waitUntil}); err != nil {
		return goerr.Wrap(err, "navigation failed", goerr.V("url", url))
	}
	return nil
}

func (p *playwrightPage) Fill(ctx context.Context, selector, value string) error {
	if err := p.page.Locator(selector).First().Fill(value); err != nil {
		return goerr.Wrap(err, "fill failed", goerr.V("selector", selector))
	}
	return nil
}

func (p *playwrightPage) Click(ctx context.Context, selector string) error {
	if err := p.page.Locator(selector).First().Click(); err != nil {
		return goerr.Wrap(err, "click failed", goerr.V("selector", selector))
	}
	return nil
}

func (p *playwrightPage) URL(ctx context.Context) (string, error) {
	return p.page.URL(), nil
}

func (p *playwrightPage) Count(ctx context.Context, selector string) (int, error) {
	n, err := p.page.Locator(selector).Count()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count elements", goerr.V("selector", selector))
	}
	return n, nil
}

func (p *playwrightPage) Wait(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}
