package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Server.Address != ":8080" || cfg.Catalog.Path != "data/varieties.json" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Cache.TTL != 10*time.Minute || cfg.Server.RateLimitWindow != time.Minute {
		t.Fatalf("durations=%v %v", cfg.Cache.TTL, cfg.Server.RateLimitWindow)
	}
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  address: ":9090"
  cors_origins: ["https://peppers.example.com"]
catalog:
  path: testdata/catalog.yaml
  sqlite_path: /tmp/peppers.db
cache:
  ttl: 30s
logging:
  format: console
`
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("API_ADDRESS", ":7070")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Server.Address != ":7070" {
		t.Fatalf("env should win over file, address=%q", cfg.Server.Address)
	}
	if want := []string{"https://a.example.com", "https://b.example.com"}; !reflect.DeepEqual(cfg.Server.CORSOrigins, want) {
		t.Fatalf("cors=%v", cfg.Server.CORSOrigins)
	}
	if cfg.Catalog.SQLitePath != "/tmp/peppers.db" || cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("logging=%+v", cfg.Logging)
	}
	if cfg.Cache.Size != 256 {
		t.Fatalf("default cache size lost: %d", cfg.Cache.Size)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	if _, err := LoadFrom(""); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_UsesConfigPathEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(p, []byte("matching:\n  weights_path: custom/weights.json\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, p)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Matching.WeightsPath != "custom/weights.json" {
		t.Fatalf("weights path=%q", cfg.Matching.WeightsPath)
	}
}
