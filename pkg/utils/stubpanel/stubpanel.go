// Package stubpanel provides an in-process imitation of the blocklist admin
// panel for tests: a login form, cookie session and a query driven
// blocklist endpoint that answers with success or error markers.
package stubpanel

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

const sessionCookie = "panel_session"

// Markup renders the body of a blocklist response. Returning an empty string
// falls back to the default rendering.
type Markup func(q url.Values) string

// Panel is a running stub panel
type Panel struct {
	*httptest.Server

	username string
	password string
	markup   Markup

	mu       sync.Mutex
	sessions map[string]bool
	entries  map[string]string
	queries  []string
	logins   int
}

// Option configures the stub panel
type Option func(*Panel)

// WithMarkup overrides the blocklist response body
func WithMarkup(m Markup) Option {
	return func(p *Panel) {
		p.markup = m
	}
}

// New starts a stub panel accepting username/password. The caller closes it.
func New(username, password string, opts ...Option) *Panel {
	p := &Panel{
		username: username,
		password: password,
		sessions: map[string]bool{},
		entries:  map[string]string{},
	}
	for _, opt := range opts {
		opt(p)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", p.handleLogin)
	mux.HandleFunc("/blocklist", p.handleBlocklist)
	mux.HandleFunc("/", p.handleHome)

	p.Server = httptest.NewServer(mux)
	return p
}

// Entries returns a copy of the blocklist, guid to reason
func (p *Panel) Entries() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]string, len(p.entries))
	for k, v := range p.entries {
		out[k] = v
	}
	return out
}

// Queries returns the raw query strings received by the blocklist endpoint
func (p *Panel) Queries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.queries...)
}

// Logins returns the number of successful logins
func (p *Panel) Logins() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.logins
}

const loginPage = `<!DOCTYPE html>
<html><body>
<form method="post" action="/login">
  <input type="hidden" name="ReturnUrl" value="/">
  <input type="text" name="Username">
  <input type="password" name="Password">
  <button type="submit">Sign in</button>
</form>
%s
</body></html>`

func (p *Panel) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("Username") != p.username || r.PostForm.Get("Password") != p.password {
			http.Redirect(w, r, "/login?failed=1", http.StatusFound)
			return
		}

		token := newToken()
		p.mu.Lock()
		p.sessions[token] = true
		p.logins++
		p.mu.Unlock()

		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: token, Path: "/", HttpOnly: true})
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	notice := ""
	if r.URL.Query().Get("failed") != "" {
		notice = `<div class="validation-summary">Invalid login attempt</div>`
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, loginPage, notice)
}

func (p *Panel) authenticated(r *http.Request) bool {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessions[c.Value]
}

func (p *Panel) handleHome(w http.ResponseWriter, r *http.Request) {
	if !p.authenticated(r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html><html><body><h1>Dashboard</h1></body></html>`)
}

func (p *Panel) handleBlocklist(w http.ResponseWriter, r *http.Request) {
	if !p.authenticated(r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	q := r.URL.Query()
	p.mu.Lock()
	p.queries = append(p.queries, r.URL.RawQuery)
	p.mu.Unlock()

	body := ""
	if p.markup != nil {
		body = p.markup(q)
	}
	if body == "" {
		body = p.apply(q)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html><html><body>%s<pre id="query">%s</pre></body></html>`,
		body, html.EscapeString(r.URL.RawQuery))
}

func (p *Panel) apply(q url.Values) string {
	guid := q.Get("guid")
	if guid == "" {
		return `<div class="alert alert-danger">GUID is required</div>`
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch q.Get("action") {
	case "add":
		p.entries[guid] = q.Get("context")
		return `<div class="alert alert-success">Added ` + html.EscapeString(guid) + `</div>`
	case "remove":
		if _, ok := p.entries[guid]; !ok {
			return `<div class="alert alert-error">` + html.EscapeString(guid) + ` is not blocked</div>`
		}
		delete(p.entries, guid)
		return `<div class="toast toast-success">Removed ` + html.EscapeString(guid) + `</div>`
	default:
		return `<div class="alert alert-danger">Unknown action</div>`
	}
}

func newToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
