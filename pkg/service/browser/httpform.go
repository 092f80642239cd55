package browser

import (
	"bytes"
	"context"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36"

// HTTPFormConnector drives the panel with plain HTTP requests. It follows
// redirects, keeps cookies per browsing context and submits HTML forms, but
// does not execute JavaScript.
type HTTPFormConnector struct {
	timeout   time.Duration
	userAgent string
}

// NewHTTPForm creates a new http form connector
func NewHTTPForm(opts Options) *HTTPFormConnector {
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &HTTPFormConnector{
		timeout:   opts.Timeout,
		userAgent: ua,
	}
}

// Connect returns a connection handle. No network activity happens until a page navigates.
func (c *HTTPFormConnector) Connect(ctx context.Context) (interfaces.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "context done before connecting")
	}
	return &formBrowser{timeout: c.timeout, userAgent: c.userAgent}, nil
}

// Close is a no-op
func (c *HTTPFormConnector) Close() error {
	return nil
}

type formBrowser struct {
	timeout   time.Duration
	userAgent string
	closed    bool
}

func (b *formBrowser) NewContext(ctx context.Context) (interfaces.BrowsingContext, error) {
	if b.closed {
		return nil, goerr.New("connection is closed")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cookie jar")
	}

	client := resty.New()
	client.SetCookieJar(jar)
	client.SetHeader("User-Agent", b.userAgent)
	if b.timeout > 0 {
		client.SetTimeout(b.timeout)
	}

	return &formContext{client: client}, nil
}

func (b *formBrowser) Close() error {
	if b.closed {
		return goerr.New("connection already closed")
	}
	b.closed = true
	return nil
}

type formContext struct {
	client *resty.Client
	closed bool
}

func (c *formContext) NewPage(ctx context.Context) (interfaces.Page, error) {
	if c.closed {
		return nil, goerr.New("browser context is closed")
	}
	return &formPage{client: c.client, fields: map[string]string{}}, nil
}

func (c *formContext) Close() error {
	if c.closed {
		return goerr.New("browser context already closed")
	}
	c.closed = true
	c.client.GetClient().CloseIdleConnections()
	return nil
}

// formPage is the last loaded document plus the values filled into it
type formPage struct {
	client  *resty.Client
	current *url.URL
	doc     *goquery.Document
	fields  map[string]string
}

func (p *formPage) Navigate(ctx context.Context, rawURL string) error {
	resp, err := p.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return goerr.Wrap(err, "navigation failed", goerr.V("url", rawURL))
	}
	return p.load(resp)
}

// load replaces the page state with the response document. HTTP error
// statuses still produce a page, as they would in a browser.
func (p *formPage) load(resp *resty.Response) error {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return goerr.Wrap(err, "failed to parse page", goerr.V("url", resp.Request.URL))
	}

	p.doc = doc
	p.fields = map[string]string{}
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		p.current = resp.RawResponse.Request.URL
	} else if u, err := url.Parse(resp.Request.URL); err == nil {
		p.current = u
	}
	return nil
}

func (p *formPage) find(selector string) (*goquery.Selection, error) {
	if p.doc == nil {
		return nil, goerr.New("no page loaded", goerr.V("selector", selector))
	}
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, goerr.New("no element matches selector", goerr.V("selector", selector), goerr.V("url", p.current))
	}
	return sel, nil
}

func (p *formPage) Fill(ctx context.Context, selector, value string) error {
	sel, err := p.find(selector)
	if err != nil {
		return goerr.Wrap(err, "fill failed")
	}

	name, ok := sel.Attr("name")
	if !ok || name == "" {
		return goerr.New("fill target has no name attribute", goerr.V("selector", selector))
	}

	p.fields[name] = value
	return nil
}

func (p *formPage) Click(ctx context.Context, selector string) error {
	sel, err := p.find(selector)
	if err != nil {
		return goerr.Wrap(err, "click failed")
	}

	if goquery.NodeName(sel) == "a" {
		href, ok := sel.Attr("href")
		if !ok {
			return goerr.New("link has no href", goerr.V("selector", selector))
		}
		target, err := p.resolve(href)
		if err != nil {
			return err
		}
		return p.Navigate(ctx, target.String())
	}

	form := sel.Closest("form")
	if form.Length() == 0 {
		return goerr.New("click target is not inside a form", goerr.V("selector", selector))
	}

	return p.submit(ctx, form, sel)
}

func (p *formPage) resolve(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid URL reference", goerr.V("ref", ref))
	}
	if p.current == nil {
		return u, nil
	}
	return p.current.ResolveReference(u), nil
}

func (p *formPage) submit(ctx context.Context, form, submitter *goquery.Selection) error {
	target, err := p.resolve(form.AttrOr("action", ""))
	if err != nil {
		return err
	}

	values := formValues(form)
	for name, value := range p.fields {
		if _, ok := values[name]; ok {
			values.Set(name, value)
		}
	}
	if name, ok := submitter.Attr("name"); ok && name != "" {
		values.Set(name, submitter.AttrOr("value", ""))
	}

	req := p.client.R().SetContext(ctx)

	var resp *resty.Response
	switch strings.ToUpper(form.AttrOr("method", "GET")) {
	case "POST":
		resp, err = req.SetFormDataFromValues(values).Post(target.String())
	default:
		target.RawQuery = values.Encode()
		resp, err = req.Get(target.String())
	}
	if err != nil {
		return goerr.Wrap(err, "form submission failed", goerr.V("action", target.String()))
	}

	return p.load(resp)
}

// formValues collects the successful controls of a form with their default values
func formValues(form *goquery.Selection) url.Values {
	values := url.Values{}

	form.Find("input[name], textarea[name], select[name]").Each(func(_ int, s *goquery.Selection) {
		if _, disabled := s.Attr("disabled"); disabled {
			return
		}
		name := s.AttrOr("name", "")

		switch goquery.NodeName(s) {
		case "textarea":
			values.Add(name, s.Text())
		case "select":
			opt := s.Find("option[selected]").First()
			if opt.Length() == 0 {
				opt = s.Find("option").First()
			}
			values.Add(name, opt.AttrOr("value", strings.TrimSpace(opt.Text())))
		default:
			switch strings.ToLower(s.AttrOr("type", "text")) {
			case "submit", "button", "image", "reset", "file":
			case "checkbox", "radio":
				if _, checked := s.Attr("checked"); checked {
					values.Add(name, s.AttrOr("value", "on"))
				}
			default:
				values.Add(name, s.AttrOr("value", ""))
			}
		}
	})

	return values
}

func (p *formPage) URL(ctx context.Context) (string, error) {
	if p.current == nil {
		return "about:blank", nil
	}
	return p.current.String(), nil
}

func (p *formPage) Count(ctx context.Context, selector string) (int, error) {
	if p.doc == nil {
		return 0, nil
	}
	return p.doc.Find(selector).Length(), nil
}

func (p *formPage) Wait(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}
