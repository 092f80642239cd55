package interfaces

//go:generate moq -out mocks/browser_mock.go -pkg mocks . BrowserConnector Browser BrowsingContext Page

import (
	"context"
	"time"
)

// BrowserConnector opens connections to a browser process
type BrowserConnector interface {
	// Connect opens a new connection. Each call yields an independent connection.
	Connect(ctx context.Context) (Browser, error)
}

// Browser is a live connection to a browser process
type Browser interface {
	// NewContext creates an isolated browsing context with no shared cookies or storage
	NewContext(ctx context.Context) (BrowsingContext, error)

	// Close releases the connection
	Close() error
}

// BrowsingContext is an isolated set of pages sharing cookies and storage
type BrowsingContext interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is the set of page capabilities the relay needs
type Page interface {
	// Navigate loads url and returns once the document is parsed
	Navigate(ctx context.Context, url string) error

	// Fill sets the value of the first field matching selector
	Fill(ctx context.Context, selector, value string) error

	// Click clicks the first element matching selector
	Click(ctx context.Context, selector string) error

	// URL returns the current page URL
	URL(ctx context.Context) (string, error)

	// Count returns the number of elements matching selector
	Count(ctx context.Context, selector string) (int, error)

	// Wait pauses for d to let asynchronous page updates settle
	Wait(ctx context.Context, d time.Duration) error
}
