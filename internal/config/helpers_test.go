package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testBackendURL  = "https://abcdefghijklmnop.supabase.co"
	testProjectRef  = "abcdefghijklmnop"
	testSMSEndpoint = "https://textbelt.com/text"
)

var envKeys = []string{
	"CONFIG", "ENV_FILE",
	"APP_ENV", "APP_VERSION",
	"LOG_LEVEL",
	"BACKEND_URL", "BACKEND_KEY", "BACKEND_KEY_FILE", "BACKEND_HEALTH_PATH", "BACKEND_DATABASE_DSN",
	"SMS_PROVIDER", "SMS_ENDPOINT", "SMS_KEY", "SMS_KEY_FILE",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"READINESS_TIMEOUT", "READINESS_MAX_RETRIES", "READINESS_RETRY_BACKOFF",
	"READINESS_REFRESH_INTERVAL", "READINESS_DISABLED",
	"ASSETS_MANIFEST",
}

// clearEnvVars unsets every variable the config reads; t.Setenv restores
// the original values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// signKey builds a JWT-shaped backend key with the given role, project ref
// and expiry.
func signKey(t *testing.T, role, ref string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"iss":  "supabase",
		"role": role,
		"ref":  ref,
		"iat":  time.Now().Add(-time.Hour).Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func anonKey(t *testing.T) string {
	t.Helper()
	return signKey(t, "anon", testProjectRef, time.Now().Add(24*time.Hour))
}

// completeEnv returns a full set of required variables.
func completeEnv(t *testing.T) map[string]string {
	t.Helper()
	return map[string]string{
		"BACKEND_URL":  testBackendURL,
		"BACKEND_KEY":  anonKey(t),
		"SMS_PROVIDER": "textbelt",
		"SMS_ENDPOINT": testSMSEndpoint,
		"SMS_KEY":      "sms-secret",
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}
