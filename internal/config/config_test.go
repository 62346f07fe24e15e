package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"JWT_SECRET", "ADMIN_TOKEN", "USE_SECURE_COOKIE", "CLEANUP_DAYS",
		"PORT", "CORS_ORIGINS", "UPLOAD_DIR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("db defaults = %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.DBName != "lapor_hilang" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.SecureCookie {
		t.Error("SecureCookie should default to false")
	}
	if cfg.CleanupDays != 30 {
		t.Errorf("CleanupDays = %d, want 30", cfg.CleanupDays)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("USE_SECURE_COOKIE", "true")
	t.Setenv("CLEANUP_DAYS", "45")
	t.Setenv("PORT", "9090")

	cfg := Load()

	if cfg.DBHost != "db.internal" {
		t.Errorf("DBHost = %q", cfg.DBHost)
	}
	if !cfg.SecureCookie {
		t.Error("SecureCookie should be true")
	}
	if cfg.CleanupDays != 45 {
		t.Errorf("CleanupDays = %d, want 45", cfg.CleanupDays)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "lapor",
		DBSSLMode:  "require",
	}

	want := "host=localhost user=app password=secret dbname=lapor port=5433 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestParseIntFallback(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"15", 15},
		{"abc", 30},
		{"", 30},
		{"0", 30},
		{"-5", 30},
	}
	for _, tc := range cases {
		if got := parseInt(tc.in, 30); got != tc.want {
			t.Errorf("parseInt(%q, 30) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{"false", false},
		{"garbage", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := parseBool(tc.in); got != tc.want {
			t.Errorf("parseBool(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
