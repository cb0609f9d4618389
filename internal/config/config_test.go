package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	viper.Reset()
	config, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load without config file: %v", err)
	}

	if config.Server.Address != ":8080" {
		t.Errorf("unexpected server address %q", config.Server.Address)
	}
	if config.Database.Path != filepath.Join("data", "liftlog.db") {
		t.Errorf("unexpected database path %q", config.Database.Path)
	}
	if config.JWT.TTL != 7*24*time.Hour {
		t.Errorf("unexpected token ttl %v", config.JWT.TTL)
	}
	if config.Cookie.Secure {
		t.Error("cookie.secure should default to false")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	viper.Reset()
	directory := t.TempDir()
	contents := []byte("server:\n  address: \":9090\"\njwt:\n  secret: file-secret\n  ttl: 12h\ncookie:\n  secure: true\n")
	if err := os.WriteFile(filepath.Join(directory, "config.yaml"), contents, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	config, err := Load(directory)
	if err != nil {
		t.Fatalf("load config file: %v", err)
	}

	if config.Server.Address != ":9090" {
		t.Errorf("unexpected server address %q", config.Server.Address)
	}
	if config.JWT.Secret != "file-secret" {
		t.Errorf("unexpected jwt secret %q", config.JWT.Secret)
	}
	if config.JWT.TTL != 12*time.Hour {
		t.Errorf("unexpected token ttl %v", config.JWT.TTL)
	}
	if !config.Cookie.Secure {
		t.Error("cookie.secure should come from the file")
	}
	if config.Database.Path != filepath.Join("data", "liftlog.db") {
		t.Errorf("defaults should fill unset keys, got %q", config.Database.Path)
	}
}
