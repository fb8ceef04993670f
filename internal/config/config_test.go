package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8090 {
		t.Errorf("expected default port 8090, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log_level info, got %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.reelsite.yml")

	original := DefaultConfig()
	original.SupabaseURL = "https://proj.supabase.co"
	original.SupabaseKey = "anon-key"
	original.Port = 9000
	original.AdminPassword = "hunter2"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SupabaseURL != original.SupabaseURL {
		t.Errorf("supabase_url: got %q, want %q", loaded.SupabaseURL, original.SupabaseURL)
	}
	if loaded.SupabaseKey != original.SupabaseKey {
		t.Errorf("supabase_key: got %q, want %q", loaded.SupabaseKey, original.SupabaseKey)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.AdminPassword != original.AdminPassword {
		t.Errorf("admin_password: got %q, want %q", loaded.AdminPassword, original.AdminPassword)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8090 {
		t.Errorf("expected defaults for missing file, got port %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("REELSITE_PORT", "9999")
	t.Setenv("REELSITE_SUPABASE_URL", "https://env.supabase.co")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9999 {
		t.Errorf("env override failed: got port %d", loaded.Port)
	}
	if loaded.SupabaseURL != "https://env.supabase.co" {
		t.Errorf("env override failed: got url %q", loaded.SupabaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"huge port", func(c *Config) { c.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"url without key", func(c *Config) { c.SupabaseURL = "https://x.supabase.co" }, true},
		{"key without url", func(c *Config) { c.SupabaseKey = "anon" }, true},
		{"url and key", func(c *Config) { c.SupabaseURL = "https://x.supabase.co"; c.SupabaseKey = "anon" }, false},
		{"empty admin password", func(c *Config) { c.AdminPassword = "" }, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSupabaseConfigured(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SupabaseConfigured() {
		t.Error("defaults should not report supabase as configured")
	}
	cfg.SupabaseURL = "https://x.supabase.co"
	cfg.SupabaseKey = "anon"
	if !cfg.SupabaseConfigured() {
		t.Error("url+key should report configured")
	}
}
