package config

import (
	"strings"
	"testing"
	"time"
)

const testURI = "mongodb://localhost:27017"

func TestMustLoad_PanicsWithoutConnectionString(t *testing.T) {
	// MONGODB_CONNECTION has no default; a missing value is fatal.
	t.Setenv("MONGODB_CONNECTION", "")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic when MONGODB_CONNECTION is unset")
		}
	}()
	_ = MustLoad()
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("MONGODB_CONNECTION", testURI)
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("GIN_MODE", "weird")     // normalizes to "release"
	t.Setenv("LOG_LEVEL", "warning")  // normalizes to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "api/v1/") // missing leading, extra trailing slash
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MongoURI != testURI {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.Port != "8088" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 20*time.Second { // default untouched
		t.Errorf("WriteTimeout = %v", cfg.WriteTimeout)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if !cfg.LogPretty || !cfg.SwaggerEnabled {
		t.Errorf("LogPretty = %v, SwaggerEnabled = %v, want both true", cfg.LogPretty, cfg.SwaggerEnabled)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Errorf("APIBasePath = %q, want /api/v1", cfg.APIBasePath)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 ||
		cfg.CORS.AllowedOrigins[0] != "https://a.com" ||
		cfg.CORS.AllowedOrigins[1] != "http://b" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Errorf("Security = %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.SampleRatio != 0.75 {
		t.Errorf("OTEL = %+v", cfg.OTEL)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing connection string",
			env:  map[string]string{},
			want: "MONGODB_CONNECTION",
		},
		{
			name: "bad log level",
			env: map[string]string{
				"MONGODB_CONNECTION": testURI,
				"LOG_LEVEL":          "verbose",
			},
			want: "LOG_LEVEL",
		},
		{
			name: "bad sample ratio",
			env: map[string]string{
				"MONGODB_CONNECTION":      testURI,
				"OTEL_TRACES_SAMPLER_ARG": "1.5",
			},
			want: "OTEL_TRACES_SAMPLER_ARG",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("MONGODB_CONNECTION", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load() error = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":         "/",
		"/":        "/",
		"api":      "/api",
		"/api/":    "/api",
		"/api/v1":  "/api/v1",
		"api/v1/":  "/api/v1",
		"  /api  ": "/api",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
