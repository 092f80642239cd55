package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/service/browser"
	"github.com/urfave/cli/v3"
)

// Browser holds remote browser configuration
type Browser struct {
	Driver    string
	CDPURL    string
	Timeout   time.Duration
	UserAgent string
}

// Flags returns CLI flags for Browser configuration
func (b *Browser) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "browser-driver",
			Usage:       "Browser driver (playwright, chromedp, http)",
			Category:    "Browser",
			Value:       string(browser.DriverPlaywright),
			Sources:     cli.EnvVars("BLOCKRELAY_BROWSER_DRIVER"),
			Destination: &b.Driver,
		},
		&cli.StringFlag{
			Name:        "cdp-url",
			Usage:       "Remote browser CDP endpoint (ws:// or http://)",
			Category:    "Browser",
			Sources:     cli.EnvVars("BLOCKRELAY_CDP_URL", "BROWSERLESS_CDP_URL"),
			Destination: &b.CDPURL,
		},
		&cli.DurationFlag{
			Name:        "browser-timeout",
			Usage:       "Timeout of a single browser operation, 0 for the driver default",
			Category:    "Browser",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("BLOCKRELAY_BROWSER_TIMEOUT"),
			Destination: &b.Timeout,
		},
		&cli.StringFlag{
			Name:        "user-agent",
			Usage:       "User-Agent sent by the http driver",
			Category:    "Browser",
			Sources:     cli.EnvVars("BLOCKRELAY_USER_AGENT"),
			Destination: &b.UserAgent,
		},
	}
}

// Validate validates the browser configuration
func (b *Browser) Validate() error {
	driver := browser.Driver(b.Driver)
	if !driver.IsValid() {
		return goerr.New("invalid browser driver", goerr.V("driver", b.Driver))
	}

	if driver.RequiresEndpoint() {
		if b.CDPURL == "" {
			return goerr.New("CDP URL is required. Please provide BROWSERLESS_CDP_URL or --cdp-url",
				goerr.V("driver", b.Driver))
		}
		u, err := url.Parse(b.CDPURL)
		if err != nil || u.Host == "" {
			return goerr.New("invalid CDP URL", goerr.V("driver", b.Driver))
		}
		switch u.Scheme {
		case "ws", "wss", "http", "https":
		default:
			return goerr.New("CDP URL must use ws, wss, http or https", goerr.V("scheme", u.Scheme))
		}
	}

	if b.Timeout < 0 {
		return goerr.New("browser timeout must not be negative", goerr.V("timeout", b.Timeout))
	}

	return nil
}

// Configure creates the browser connector
func (b *Browser) Configure() (browser.Connector, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	connector, err := browser.New(browser.Driver(b.Driver), browser.Options{
		Endpoint:  b.CDPURL,
		Timeout:   b.Timeout,
		UserAgent: b.UserAgent,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create browser connector", goerr.V("driver", b.Driver))
	}

	return connector, nil
}

// LogValue returns structured log value. The CDP URL often embeds an API
// token, so only its host is logged.
func (b Browser) LogValue() slog.Value {
	host := ""
	if u, err := url.Parse(b.CDPURL); err == nil {
		host = u.Host
	}
	return slog.GroupValue(
		slog.String("driver", b.Driver),
		slog.String("cdp_host", host),
		slog.Duration("timeout", b.Timeout),
	)
}
