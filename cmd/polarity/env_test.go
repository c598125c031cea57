package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("POLARITY_TEST_INT", "7")
	t.Setenv("POLARITY_TEST_FLOAT", "0.25")
	t.Setenv("POLARITY_TEST_BAD", "abc")

	if got := envInt("POLARITY_TEST_INT", 2); got != 7 {
		t.Errorf("envInt = %d, want 7", got)
	}
	if got := envInt("POLARITY_TEST_BAD", 2); got != 2 {
		t.Errorf("envInt fallback = %d, want 2", got)
	}
	if got := envFloat("POLARITY_TEST_FLOAT", 0); got != 0.25 {
		t.Errorf("envFloat = %v, want 0.25", got)
	}
	if got := envFloat("POLARITY_TEST_UNSET", 1.5); got != 1.5 {
		t.Errorf("envFloat fallback = %v, want 1.5", got)
	}
	if got := envString("POLARITY_TEST_UNSET", "model"); got != "model" {
		t.Errorf("envString fallback = %q, want model", got)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("POLARITY_TEST_FROM_FILE=42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POLARITY_TEST_FROM_FILE", "")
	os.Unsetenv("POLARITY_TEST_FROM_FILE")

	loadEnv(path)
	if got := envInt("POLARITY_TEST_FROM_FILE", 0); got != 42 {
		t.Errorf("Value from env file = %d, want 42", got)
	}

	loadEnv(filepath.Join(t.TempDir(), "missing.env"))
}
