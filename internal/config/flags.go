package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a HTTP listen address in format [host]:port
//	-c/-config JSON or YAML config file path
//	-env-file dotenv file path
//	-env deployment environment (dev, staging, prod)
//	-log-level log level (debug, info, warn, error)
//	-backend-url backend endpoint
//	-backend-health-path backend health path
//	-sms-provider SMS provider name
//	-sms-endpoint SMS provider endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//
// Keys and other credentials are deliberately not accepted as flags.
func parseFlags(args []string) (*AppConfig, error) {
	var serverAddress NetAddress
	cfg := &AppConfig{}

	fs := flag.NewFlagSet("pickupd", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.ConfigFile, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Dotenv file path")
	fs.StringVar(&cfg.App.Environment, "env", "", "Deployment environment")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Backend.URL, "backend-url", "", "Backend URL")
	fs.StringVar(&cfg.Backend.HealthPath, "backend-health-path", "", "Backend health path")
	fs.StringVar(&cfg.SMS.Provider, "sms-provider", "", "SMS provider")
	fs.StringVar(&cfg.SMS.Endpoint, "sms-endpoint", "", "SMS provider endpoint")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
