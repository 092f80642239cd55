package usecase

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
)

// DefaultSettleDelay is the pause after login and after the action navigation
const DefaultSettleDelay = 800 * time.Millisecond

// BlocklistConfig holds the panel credentials and tuning of the Blocklist use case.
// It is constructed once at startup and read-only afterwards.
type BlocklistConfig struct {
	baseURL             string
	username            string
	password            string
	profile             model.PanelProfile
	loginSettleDelay    time.Duration
	navigateSettleDelay time.Duration
	actionTimeout       time.Duration
}

// BlocklistOption is a functional option for configuring Blocklist
type BlocklistOption func(*BlocklistConfig)

// WithPanelProfile sets the panel markup contract
func WithPanelProfile(profile model.PanelProfile) BlocklistOption {
	return func(c *BlocklistConfig) {
		c.profile = profile
	}
}

// WithLoginSettleDelay sets the pause after submitting the login form
func WithLoginSettleDelay(d time.Duration) BlocklistOption {
	return func(c *BlocklistConfig) {
		c.loginSettleDelay = d
	}
}

// WithNavigateSettleDelay sets the pause after navigating to the action URL
func WithNavigateSettleDelay(d time.Duration) BlocklistOption {
	return func(c *BlocklistConfig) {
		c.navigateSettleDelay = d
	}
}

// WithActionTimeout bounds a whole invocation. Zero disables the bound.
func WithActionTimeout(d time.Duration) BlocklistOption {
	return func(c *BlocklistConfig) {
		c.actionTimeout = d
	}
}

// NewBlocklistConfig creates a validated BlocklistConfig
func NewBlocklistConfig(baseURL, username, password string, opts ...BlocklistOption) (*BlocklistConfig, error) {
	config := &BlocklistConfig{
		baseURL:             strings.TrimRight(baseURL, "/"),
		username:            username,
		password:            password,
		profile:             model.DefaultPanelProfile(),
		loginSettleDelay:    DefaultSettleDelay,
		navigateSettleDelay: DefaultSettleDelay,
	}

	for _, opt := range opts {
		opt(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *BlocklistConfig) Validate() error {
	if c.baseURL == "" {
		return goerr.New("panel base URL is required")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return goerr.Wrap(err, "invalid panel base URL", goerr.V("base_url", c.baseURL))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.New("panel base URL must be an absolute http(s) URL", goerr.V("base_url", c.baseURL))
	}

	if c.username == "" {
		return goerr.New("panel username is required")
	}
	if c.password == "" {
		return goerr.New("panel password is required")
	}

	if err := c.profile.Validate(); err != nil {
		return goerr.Wrap(err, "invalid panel profile")
	}

	if c.loginSettleDelay < 0 || c.navigateSettleDelay < 0 {
		return goerr.New("settle delay must not be negative",
			goerr.V("login", c.loginSettleDelay),
			goerr.V("navigate", c.navigateSettleDelay))
	}
	if c.actionTimeout < 0 {
		return goerr.New("action timeout must not be negative", goerr.V("timeout", c.actionTimeout))
	}

	return nil
}

// BaseURL returns the panel base URL without trailing slash
func (c *BlocklistConfig) BaseURL() string {
	return c.baseURL
}

// Profile returns the panel markup contract
func (c *BlocklistConfig) Profile() model.PanelProfile {
	return c.profile
}

// LoginURL returns the absolute URL of the login form
func (c *BlocklistConfig) LoginURL() string {
	return c.baseURL + c.profile.LoginPath
}

// LogValue returns structured log value
func (c BlocklistConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.baseURL),
		slog.Bool("has_username", c.username != ""),
		slog.Bool("has_password", c.password != ""),
		slog.Duration("login_settle_delay", c.loginSettleDelay),
		slog.Duration("navigate_settle_delay", c.navigateSettleDelay),
		slog.Duration("action_timeout", c.actionTimeout),
	)
}
