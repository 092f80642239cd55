package browser

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces"
)

// Driver names a browser backend
type Driver string

const (
	// DriverPlaywright connects to a remote Chromium over CDP with playwright-go
	DriverPlaywright Driver = "playwright"
	// DriverChromedp connects to a remote Chromium over CDP with chromedp
	DriverChromedp Driver = "chromedp"
	// DriverHTTP submits forms over plain HTTP without executing JavaScript
	DriverHTTP Driver = "http"
)

// String returns the string representation
func (d Driver) String() string {
	return string(d)
}

// IsValid checks if the driver is supported
func (d Driver) IsValid() bool {
	switch d {
	case DriverPlaywright, DriverChromedp, DriverHTTP:
		return true
	default:
		return false
	}
}

// RequiresEndpoint reports whether the driver needs a remote browser endpoint
func (d Driver) RequiresEndpoint() bool {
	return d == DriverPlaywright || d == DriverChromedp
}

// Connector is a BrowserConnector holding process-wide resources released by Close
type Connector interface {
	interfaces.BrowserConnector
	Close() error
}

// Options configures a connector
type Options struct {
	// Endpoint is the remote browser connection URL (CDP websocket or HTTP)
	Endpoint string

	// Timeout bounds each page operation. Zero keeps the library default.
	Timeout time.Duration

	// UserAgent overrides the user agent of the http driver
	UserAgent string
}

// New creates a connector for the given driver
func New(driver Driver, opts Options) (Connector, error) {
	if driver.RequiresEndpoint() && opts.Endpoint == "" {
		return nil, goerr.New("remote browser endpoint is required", goerr.V("driver", driver))
	}

	switch driver {
	case DriverPlaywright:
		return NewPlaywright(opts), nil
	case DriverChromedp:
		return NewChromedp(opts), nil
	case DriverHTTP:
		return NewHTTPForm(opts), nil
	default:
		return nil, goerr.New("unsupported browser driver", goerr.V("driver", driver))
	}
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "settle delay interrupted", goerr.V("delay", d))
	}
}
