package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMarshalZerologObject_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	cfg := AppConfig{
		Backend: Backend{URL: testBackendURL, Key: "backend-secret", DatabaseDSN: "postgres://u:p@db/x"},
		SMS:     SMS{Provider: "textbelt", Endpoint: testSMSEndpoint, Key: "sms-secret"},
	}
	log.Info().Object("config", cfg).Send()

	out := buf.String()
	assert.NotContains(t, out, "backend-secret")
	assert.NotContains(t, out, "sms-secret")
	assert.NotContains(t, out, "u:p@db")
	assert.Contains(t, out, redacted)
	assert.Contains(t, out, testBackendURL)
	assert.Contains(t, out, `"provider":"textbelt"`)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "", redact(""))
	assert.Equal(t, redacted, redact("x"))
}
