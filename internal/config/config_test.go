package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
host: https://satellite.example.com
username: admin
password: swordfish
organization: ACME
cache_dir: /var/cache/satellite-inventory
cache_max_age: 300
`

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, t.TempDir(), validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Host != "https://satellite.example.com" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Username != "admin" {
		t.Errorf("Username = %q", cfg.Username)
	}
	if cfg.Organization != "ACME" {
		t.Errorf("Organization = %q", cfg.Organization)
	}
	if cfg.CacheMaxAge != 300 {
		t.Errorf("CacheMaxAge = %d, want 300", cfg.CacheMaxAge)
	}
	if cfg.Insecure {
		t.Error("Insecure should default to false")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err == nil {
		t.Error("expected error when config file does not exist")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "host: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	cases := map[string]string{
		"host": `
username: admin
password: swordfish
organization: ACME
cache_dir: /tmp/c
cache_max_age: 300
`,
		"username": `
host: https://satellite.example.com
password: swordfish
organization: ACME
cache_dir: /tmp/c
cache_max_age: 300
`,
		"organization": `
host: https://satellite.example.com
username: admin
password: swordfish
cache_dir: /tmp/c
cache_max_age: 300
`,
		"cache_dir": `
host: https://satellite.example.com
username: admin
password: swordfish
organization: ACME
cache_max_age: 300
`,
		"cache_max_age": `
host: https://satellite.example.com
username: admin
password: swordfish
organization: ACME
cache_dir: /tmp/c
`,
	}
	for key, content := range cases {
		t.Run(key, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), content)
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for missing %s", key)
			}
		})
	}
}

func TestLoad_HostMustBeURL(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
host: satellite.example.com
username: admin
password: swordfish
organization: ACME
cache_dir: /tmp/c
cache_max_age: 300
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for host without scheme")
	}
}

func TestLoad_NegativeMaxAge(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
host: https://satellite.example.com
username: admin
password: swordfish
organization: ACME
cache_dir: /tmp/c
cache_max_age: -5
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative cache_max_age")
	}
}

func TestLoad_PasswordFromEnv(t *testing.T) {
	t.Setenv("SATELLITE_PASSWORD", "from-env")
	path := writeConfig(t, t.TempDir(), `
host: https://satellite.example.com
username: admin
organization: ACME
cache_dir: /tmp/c
cache_max_age: 300
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Password != "from-env" {
		t.Errorf("Password = %q, want %q", cfg.Password, "from-env")
	}
}

func TestLoad_EnvOverridesFilePassword(t *testing.T) {
	t.Setenv("SATELLITE_PASSWORD", "from-env")
	path := writeConfig(t, t.TempDir(), validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Password != "from-env" {
		t.Errorf("Password = %q, want env value to win", cfg.Password)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{
		Host:         "https://satellite.example.com",
		Username:     "admin",
		Password:     "swordfish",
		Organization: "ACME",
		CacheDir:     "/tmp/c",
		CacheMaxAge:  600,
		Insecure:     true,
	}
	if err := Save(in, path); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("round-trip mismatch: got %+v, want %+v", out, in)
	}
}
