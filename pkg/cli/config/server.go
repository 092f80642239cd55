package config

import (
	"log/slog"
	"net"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// DefaultAddr is the listen address when neither --addr nor PORT is given
const DefaultAddr = "0.0.0.0:3000"

// Server holds server configuration
type Server struct {
	Addr string
	Port string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       DefaultAddr,
			Sources:     cli.EnvVars("BLOCKRELAY_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "port",
			Usage:       "Listen port, overrides the port of --addr",
			Category:    "Server",
			Sources:     cli.EnvVars("PORT"),
			Destination: &s.Port,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if _, err := s.ListenAddr(); err != nil {
		return err
	}
	return nil
}

// ListenAddr returns the address to listen on
func (s *Server) ListenAddr() (string, error) {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", goerr.Wrap(err, "invalid server address", goerr.V("addr", addr))
	}

	if s.Port != "" {
		port = s.Port
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return "", goerr.New("invalid server port", goerr.V("port", port))
	}

	return net.JoinHostPort(host, port), nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("port", s.Port),
	)
}
