package data

import (
	"context"
	"errors"
	"testing"
)

func TestConnectWithoutConnString(t *testing.T) {
	t.Setenv("CLASSHOURS_UNSET_CONN", "")
	_, err := connect(context.Background(), "CLASSHOURS_UNSET_CONN")
	if !errors.Is(err, ErrNoConnString) {
		t.Errorf("expected ErrNoConnString, got %v", err)
	}
}

func TestLoadEnvWithoutFile(t *testing.T) {
	if err := LoadEnv(); err != nil {
		t.Errorf("expected a missing or valid .env to load, got %v", err)
	}
}
