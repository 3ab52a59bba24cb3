package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/ngeng/parameter"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "profile", "fps", "mute", "debug"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag --%s", name)
		}
	}
}

func TestRootCommandRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badPath, []byte("[[gears]]\nmax_speed = 1.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"--config", filepath.Join(dir, "missing.toml")}, "missing.toml"},
		{"unknown profile", []string{"--profile", "turbo"}, "turbo"},
		{"invalid gear table", []string{"--config", badPath}, "gear"},
		{"bad fps", []string{"--fps=-3"}, "fps"},
		{"positional args", []string{"extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestResolveConfigFlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ngeng.toml")
	if err := os.WriteFile(path, []byte("profile = \"classic\"\n[display]\nfps = 30\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := resolveConfig(flags{configPath: path, profile: parameter.ProfileExtended, mute: true})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Profile != parameter.ProfileExtended {
		t.Errorf("Expected flag profile, got %q", cfg.Profile)
	}
	if cfg.FPS != 30 {
		t.Errorf("Expected file fps, got %d", cfg.FPS)
	}
	if !cfg.Muted {
		t.Error("Expected muted")
	}
}
