package envutil

import (
	"testing"

	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

func TestGetEnv(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	t.Setenv("ENVUTIL_TEST_STR", "hello")
	if got := GetEnv("ENVUTIL_TEST_STR", "fallback", log); got != "hello" {
		t.Fatalf("GetEnv: got %q", got)
	}
	if got := GetEnv("ENVUTIL_TEST_STR_MISSING", "fallback", log); got != "fallback" {
		t.Fatalf("GetEnv missing: got %q", got)
	}
	if got := GetEnv("ENVUTIL_TEST_STR_MISSING", "fallback", nil); got != "fallback" {
		t.Fatalf("GetEnv nil logger: got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	t.Setenv("ENVUTIL_TEST_INT", "250")
	if got := GetEnvAsInt("ENVUTIL_TEST_INT", 1000, log); got != 250 {
		t.Fatalf("GetEnvAsInt: got %d", got)
	}

	t.Setenv("ENVUTIL_TEST_INT_BAD", "abc")
	if got := GetEnvAsInt("ENVUTIL_TEST_INT_BAD", 1000, log); got != 1000 {
		t.Fatalf("GetEnvAsInt bad value: got %d", got)
	}

	if got := GetEnvAsInt("ENVUTIL_TEST_INT_MISSING", 1000, log); got != 1000 {
		t.Fatalf("GetEnvAsInt missing: got %d", got)
	}
	if got := GetEnvAsInt("ENVUTIL_TEST_INT_MISSING", 1000, nil); got != 1000 {
		t.Fatalf("GetEnvAsInt nil logger: got %d", got)
	}
}
