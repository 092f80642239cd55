package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// DefaultPanelBaseURL is the panel used when ASSETTO_BASE is not set
const DefaultPanelBaseURL = "https://de7.assettohosting.com:50495"

// Panel holds the target admin panel configuration
type Panel struct {
	BaseURL             string
	Username            string
	Password            string
	ProfilePath         string
	LoginSettleDelay    time.Duration
	NavigateSettleDelay time.Duration
	ActionTimeout       time.Duration
}

// Flags returns CLI flags for Panel configuration
func (p *Panel) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "panel-base-url",
			Usage:       "Base URL of the admin panel",
			Category:    "Panel",
			Value:       DefaultPanelBaseURL,
			Sources:     cli.EnvVars("BLOCKRELAY_PANEL_BASE_URL", "ASSETTO_BASE"),
			Destination: &p.BaseURL,
		},
		&cli.StringFlag{
			Name:        "panel-user",
			Usage:       "Admin panel username",
			Category:    "Panel",
			Sources:     cli.EnvVars("BLOCKRELAY_PANEL_USER", "ASSETTO_USER"),
			Destination: &p.Username,
		},
		&cli.StringFlag{
			Name:        "panel-pass",
			Usage:       "Admin panel password",
			Category:    "Panel",
			Sources:     cli.EnvVars("BLOCKRELAY_PANEL_PASS", "ASSETTO_PASS"),
			Destination: &p.Password,
		},
		&cli.StringFlag{
			Name:        "panel-profile",
			Usage:       "YAML file overriding panel paths and selectors",
			Category:    "Panel",
			Sources:     cli.EnvVars("BLOCKRELAY_PANEL_PROFILE"),
			Destination: &p.ProfilePath,
		},
		&cli.DurationFlag{
			Name:        "login-settle-delay",
			Usage:       "Pause after submitting the login form",
			Category:    "Panel",
			Value:       usecase.DefaultSettleDelay,
			Sources:     cli.EnvVars("BLOCKRELAY_LOGIN_SETTLE_DELAY"),
			Destination: &p.LoginSettleDelay,
		},
		&cli.DurationFlag{
			Name:        "navigate-settle-delay",
			Usage:       "Pause after opening the action URL",
			Category:    "Panel",
			Value:       usecase.DefaultSettleDelay,
			Sources:     cli.EnvVars("BLOCKRELAY_NAVIGATE_SETTLE_DELAY"),
			Destination: &p.NavigateSettleDelay,
		},
		&cli.DurationFlag{
			Name:        "action-timeout",
			Usage:       "Upper bound of one relay invocation, 0 for none",
			Category:    "Panel",
			Sources:     cli.EnvVars("BLOCKRELAY_ACTION_TIMEOUT"),
			Destination: &p.ActionTimeout,
		},
	}
}

// Validate checks the values required before any request is served
func (p *Panel) Validate() error {
	if p.BaseURL == "" {
		return goerr.New("panel base URL is required. Please provide ASSETTO_BASE or --panel-base-url")
	}
	if p.Username == "" {
		return goerr.New("panel username is required. Please provide ASSETTO_USER or --panel-user")
	}
	if p.Password == "" {
		return goerr.New("panel password is required. Please provide ASSETTO_PASS or --panel-pass")
	}
	return nil
}

// Configure builds the use case configuration, loading the panel profile if given
func (p *Panel) Configure() (*usecase.BlocklistConfig, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	opts := []usecase.BlocklistOption{
		usecase.WithLoginSettleDelay(p.LoginSettleDelay),
		usecase.WithNavigateSettleDelay(p.NavigateSettleDelay),
		usecase.WithActionTimeout(p.ActionTimeout),
	}

	if p.ProfilePath != "" {
		profile, err := LoadPanelProfile(p.ProfilePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, usecase.WithPanelProfile(*profile))
	}

	config, err := usecase.NewBlocklistConfig(p.BaseURL, p.Username, p.Password, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid panel configuration")
	}
	return config, nil
}

// LogValue returns structured log value
func (p Panel) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", p.BaseURL),
		slog.Bool("has_username", p.Username != ""),
		slog.Bool("has_password", p.Password != ""),
		slog.String("profile", p.ProfilePath),
		slog.Duration("login_settle_delay", p.LoginSettleDelay),
		slog.Duration("navigate_settle_delay", p.NavigateSettleDelay),
		slog.Duration("action_timeout", p.ActionTimeout),
	)
}
