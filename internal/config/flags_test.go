package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
		{
			name:     "IPv6 host",
			addr:     NetAddress{Host: "::1", Port: 8080},
			expected: "[::1]:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Host: "", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// TestParseFlags tests the parseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *AppConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "127.0.0.1:9000",
				"-c", "/path/to/config.json",
				"-env-file", "/path/to/.env",
				"-env", "prod",
				"-log-level", "warn",
				"-backend-url", testBackendURL,
				"-backend-health-path", "/status",
				"-sms-provider", "textbelt",
				"-sms-endpoint", testSMSEndpoint,
				"-request-timeout", "30s",
			},
			validate: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
				assert.Equal(t, "/path/to/config.json", cfg.ConfigFile)
				assert.Equal(t, "/path/to/.env", cfg.EnvFile)
				assert.Equal(t, "prod", cfg.App.Environment)
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.Equal(t, testBackendURL, cfg.Backend.URL)
				assert.Equal(t, "/status", cfg.Backend.HealthPath)
				assert.Equal(t, "textbelt", cfg.SMS.Provider)
				assert.Equal(t, testSMSEndpoint, cfg.SMS.Endpoint)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.yaml"},
			validate: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFile)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, AppConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Errors tests parseFlags with invalid input
func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
		{name: "invalid duration", args: []string{"-request-timeout", "soon"}},
		{name: "secret flags are not accepted", args: []string{"-sms-key", "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
