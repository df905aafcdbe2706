package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigDefaults(t *testing.T) {
	// 1. 创建临时配置文件，只覆盖部分字段
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	content := []byte("server:\n  http-port: \":8080\"\napp:\n  public-base-url: \"https://files.example.com\"\n")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, _, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// 2. 文件中的值生效
	if cfg.Server.HttpPort != ":8080" {
		t.Errorf("Expected http-port :8080, got %s", cfg.Server.HttpPort)
	}
	if cfg.App.PublicBaseURL != "https://files.example.com" {
		t.Errorf("Expected public-base-url https://files.example.com, got %s", cfg.App.PublicBaseURL)
	}

	// 3. 未设置的字段填充默认值
	if cfg.Server.RunMode != "release" {
		t.Errorf("Expected run-mode release, got %s", cfg.Server.RunMode)
	}
	if cfg.App.DefaultPageSize != 10 {
		t.Errorf("Expected default-page-size 10, got %d", cfg.App.DefaultPageSize)
	}
	if cfg.App.ShareExpireCheckInterval != "10m" {
		t.Errorf("Expected share-expire-check-interval 10m, got %s", cfg.App.ShareExpireCheckInterval)
	}
	if cfg.Tracer.Header != "X-Trace-ID" {
		t.Errorf("Expected tracer header X-Trace-ID, got %s", cfg.Tracer.Header)
	}
}

func TestConfigSave(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(tmpFile, []byte("security:\n  auth-token-key: \"initial-key\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	cfg, _, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// 修改配置并保存
	cfg.Security.AuthTokenKey = "updated-key"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Config.Save error: %v, file: %s", err, cfg.File)
	}

	// 验证文件内容
	updatedData, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read updated config file: %v", err)
	}

	var updated AppConfig
	if err := yaml.Unmarshal(updatedData, &updated); err != nil {
		t.Fatalf("Failed to unmarshal updated config: %v", err)
	}

	if updated.Security.AuthTokenKey != "updated-key" {
		t.Errorf("Expected auth-token-key updated-key, got %s", updated.Security.AuthTokenKey)
	}
}

func TestGetTokenExpiry(t *testing.T) {
	cfg := &AppConfig{}
	cfg.Security.TokenExpiry = "7d"
	if got := cfg.GetTokenExpiry(); got != 7*24*time.Hour {
		t.Errorf("Expected 7d expiry, got %v", got)
	}

	cfg.Security.TokenExpiry = "not-a-duration"
	if got := cfg.GetTokenExpiry(); got != 365*24*time.Hour {
		t.Errorf("Expected fallback 365d expiry, got %v", got)
	}
}
