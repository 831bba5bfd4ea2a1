package config

import (
	"testing"
	"time"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig err: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.StaticDir != "public" {
		t.Fatalf("unexpected static dir: %q", cfg.StaticDir)
	}
}

func TestLoadServerConfigExplicitAddr(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:8080")

	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig err: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
}

func TestLoadServerConfigRejectsSpaces(t *testing.T) {
	t.Setenv("PORT", "30 00")

	if _, err := loadServerConfig(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}
}

func TestLoadStoreConfigTTL(t *testing.T) {
	t.Setenv("ROOM_TTL_SECONDS", "3600")
	t.Setenv("DATABASE_URL", "")

	cfg, err := loadStoreConfig()
	if err != nil {
		t.Fatalf("loadStoreConfig err: %v", err)
	}
	if cfg.RoomTTL != time.Hour {
		t.Fatalf("unexpected TTL: %v", cfg.RoomTTL)
	}
}

func TestLoadStoreConfigTTLDisabledByDefault(t *testing.T) {
	t.Setenv("ROOM_TTL_SECONDS", "")

	cfg, err := loadStoreConfig()
	if err != nil {
		t.Fatalf("loadStoreConfig err: %v", err)
	}
	if cfg.RoomTTL != 0 {
		t.Fatalf("expected zero TTL, got %v", cfg.RoomTTL)
	}
}

func TestLoadStoreConfigRejectsBadTTL(t *testing.T) {
	t.Setenv("ROOM_TTL_SECONDS", "soon")

	if _, err := loadStoreConfig(); err == nil {
		t.Fatal("expected error for non-numeric TTL")
	}
}

func TestAIConfigEnabled(t *testing.T) {
	cases := []struct {
		name string
		cfg  AIConfig
		want bool
	}{
		{"api key + model", AIConfig{APIKey: "k", Model: "m"}, true},
		{"ak/sk + model", AIConfig{AccessKey: "a", SecretKey: "s", Model: "m"}, true},
		{"missing model", AIConfig{APIKey: "k"}, false},
		{"missing credentials", AIConfig{Model: "m"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Enabled(); got != tc.want {
				t.Fatalf("Enabled() = %v, want %v", got, tc.want)
			}
		})
	}
}
