package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/blockrelay/pkg/service/browser"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// closeConnector stops the browser driver, logging a failure
func closeConnector(ctx context.Context, connector browser.Connector) {
	if err := connector.Close(); err != nil {
		ctxlog.From(ctx).Warn("failed to close browser connector", "error", err)
	}
}
