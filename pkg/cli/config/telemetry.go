package config

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/utils/telemetry"
	"github.com/urfave/cli/v3"
)

// ServiceName is the service.name resource attribute on exported spans
const ServiceName = "blockrelay"

// Telemetry holds trace export configuration
type Telemetry struct {
	OTLPEndpoint string
}

// Flags returns CLI flags for Telemetry configuration
func (t *Telemetry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "otlp-endpoint",
			Usage:       "OTLP/HTTP traces endpoint URL. Tracing is off when empty",
			Category:    "Telemetry",
			Sources:     cli.EnvVars("BLOCKRELAY_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"),
			Destination: &t.OTLPEndpoint,
		},
	}
}

// Validate validates the telemetry configuration
func (t *Telemetry) Validate() error {
	if t.OTLPEndpoint == "" {
		return nil
	}

	u, err := url.Parse(t.OTLPEndpoint)
	if err != nil {
		return goerr.Wrap(err, "invalid OTLP endpoint")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.New("OTLP endpoint must be an http or https URL", goerr.V("scheme", u.Scheme))
	}
	return nil
}

// Configure installs the global tracer provider. The returned Telemetry must
// be shut down to flush pending spans.
func (t *Telemetry) Configure(ctx context.Context) (*telemetry.Telemetry, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return telemetry.Setup(ctx, ServiceName, t.OTLPEndpoint)
}

func (t Telemetry) LogValue() slog.Value {
	if t.OTLPEndpoint == "" {
		return slog.GroupValue(slog.Bool("enabled", false))
	}

	var host string
	if u, err := url.Parse(t.OTLPEndpoint); err == nil {
		host = u.Host
	}
	return slog.GroupValue(
		slog.Bool("enabled", true),
		slog.String("otlp_host", host),
	)
}
