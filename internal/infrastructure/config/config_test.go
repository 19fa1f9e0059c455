package config

import (
	"testing"
	"time"
)

func TestMaskAPIKey(t *testing.T) {
	if got := MaskAPIKey("sk-or-v1-abcdef123456"); got != "sk-o...3456" {
		t.Errorf("MaskAPIKey = %q, want sk-o...3456", got)
	}
	if got := MaskAPIKey("short"); got != "****" {
		t.Errorf("MaskAPIKey(short) = %q, want ****", got)
	}
	if got := MaskAPIKey(""); got != "****" {
		t.Errorf("MaskAPIKey(empty) = %q, want ****", got)
	}
}

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Cache: CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         1000,
			TTL:             24 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		RateLimit: RateLimitConfig{Enabled: true, Requests: 100, Window: time.Minute},
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validTestConfig()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	c := validTestConfig()
	c.Server.Port = 0
	if err := validateConfig(c); err == nil {
		t.Error("missing port must be rejected")
	}

	c = validTestConfig()
	c.RecipeAPI.Enabled = true
	if err := validateConfig(c); err == nil {
		t.Error("enabled recipe API without a key must be rejected")
	}

	c = validTestConfig()
	c.Cache.Backend = "memcached"
	if err := validateConfig(c); err == nil {
		t.Error("unknown cache backend must be rejected")
	}

	c = validTestConfig()
	c.RateLimit.Requests = 0
	if err := validateConfig(c); err == nil {
		t.Error("zero rate limit requests must be rejected")
	}
}
