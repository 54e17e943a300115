// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
	"time"
)

func TestParseFlagsDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ROOM_MAX_LIFETIME", "ROOM_IDLE_LIMIT", "SWEEP_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MaxLifetime != 6*time.Hour {
		t.Errorf("MaxLifetime = %v, want 6h", cfg.MaxLifetime)
	}
	if cfg.IdleLimit != 30*time.Minute {
		t.Errorf("IdleLimit = %v, want 30m", cfg.IdleLimit)
	}
	if cfg.SweepInterval != time.Minute {
		t.Errorf("SweepInterval = %v, want 1m", cfg.SweepInterval)
	}
}

func TestParseFlagsExplicit(t *testing.T) {
	cfg, err := ParseFlags([]string{"-p", "9090", "-max-lifetime", "2h", "-idle-limit", "10m", "-sweep-interval", "30s"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.MaxLifetime != 2*time.Hour {
		t.Errorf("MaxLifetime = %v, want 2h", cfg.MaxLifetime)
	}
	if cfg.IdleLimit != 10*time.Minute {
		t.Errorf("IdleLimit = %v, want 10m", cfg.IdleLimit)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("SweepInterval = %v, want 30s", cfg.SweepInterval)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ROOM_MAX_LIFETIME", "1h")
	t.Setenv("ROOM_IDLE_LIMIT", "5m")
	t.Setenv("SWEEP_INTERVAL", "45s")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.MaxLifetime != time.Hour {
		t.Errorf("MaxLifetime = %v, want 1h", cfg.MaxLifetime)
	}
	if cfg.IdleLimit != 5*time.Minute {
		t.Errorf("IdleLimit = %v, want 5m", cfg.IdleLimit)
	}
	if cfg.SweepInterval != 45*time.Second {
		t.Errorf("SweepInterval = %v, want 45s", cfg.SweepInterval)
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ROOM_MAX_LIFETIME", "1h")

	cfg, err := ParseFlags([]string{"-p", "9090", "-max-lifetime", "2h"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	// Flags beat environment.
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.MaxLifetime != 2*time.Hour {
		t.Errorf("MaxLifetime = %v, want 2h", cfg.MaxLifetime)
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "port too large", args: []string{"-p", "70000"}},
		{name: "negative port", args: []string{"-p", "-1"}},
		{name: "bad PORT env", env: map[string]string{"PORT": "not-a-number"}},
		{name: "bad duration env", env: map[string]string{"ROOM_IDLE_LIMIT": "soon"}},
		{name: "negative duration env", env: map[string]string{"SWEEP_INTERVAL": "-5s"}},
		{name: "negative duration flag", args: []string{"-idle-limit", "-10m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
