package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom on missing file should return empty config, got error: %v", err)
	}
	if cfg.Deployment != nil {
		t.Error("empty config should have no deployment record")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	now := time.Now().Truncate(time.Second)
	cfg := New()
	cfg.SetDeployment(&Deployment{
		Domain:    "example.com",
		Email:     "admin@example.com",
		Upstream:  "http://127.0.0.1:3000",
		SSL:       true,
		SSLCert:   "/etc/letsencrypt/live/example.com/fullchain.pem",
		SSLKey:    "/etc/letsencrypt/live/example.com/privkey.pem",
		CreatedAt: now,
		UpdatedAt: now,
	})

	if err := cfg.SaveTo(dir, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Deployment == nil {
		t.Fatal("deployment record missing after round trip")
	}

	d := loaded.Deployment
	if d.Domain != "example.com" {
		t.Errorf("domain = %q", d.Domain)
	}
	if d.Email != "admin@example.com" {
		t.Errorf("email = %q", d.Email)
	}
	if d.Upstream != "http://127.0.0.1:3000" {
		t.Errorf("upstream = %q", d.Upstream)
	}
	if !d.SSL {
		t.Error("ssl flag lost")
	}
	if !d.CreatedAt.Equal(now) {
		t.Errorf("created_at = %v, want %v", d.CreatedAt, now)
	}
}

func TestLoadFrom_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for corrupt config")
	}
}

func TestClearDeployment(t *testing.T) {
	cfg := New()
	cfg.SetDeployment(&Deployment{Domain: "example.com"})
	cfg.ClearDeployment()
	if cfg.Deployment != nil {
		t.Error("ClearDeployment should remove the record")
	}
}

func TestWildcardDomain(t *testing.T) {
	d := &Deployment{Domain: "example.com"}
	if d.WildcardDomain() != "*.example.com" {
		t.Errorf("WildcardDomain() = %q", d.WildcardDomain())
	}
}

func TestSaveTo_CreatesDirectory(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "nested", "tribenest")
	path := filepath.Join(dir, "config.yaml")

	if err := New().SaveTo(dir, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
