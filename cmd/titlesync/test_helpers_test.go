package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"titlesync/internal/config"
	"titlesync/internal/host"
	"titlesync/internal/host/bridge"
	"titlesync/internal/logging"
	"titlesync/internal/testsupport"
	"titlesync/internal/timeline"
)

type cliTestEnv struct {
	cfg        *config.Config
	fake       *testsupport.FakeHost
	server     *bridge.Server
	socketPath string
	configPath string
	baseDir    string
	cancel     context.CancelFunc
}

func setupCLITestEnv(t *testing.T, fake *testsupport.FakeHost) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfg := testsupport.NewConfig(t)
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Bridge.Socket = filepath.Join(base, "bridge.sock")
	cfg.Journal.Path = filepath.Join(base, "history.db")
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatalf("mkdir log dir: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	srv, err := bridge.NewServer(ctx, cfg.Bridge.Socket, fake, logging.NewNop())
	if err != nil {
		cancel()
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping CLI test: %v", err)
		}
		t.Fatalf("bridge.NewServer: %v", err)
	}

	env := &cliTestEnv{
		cfg:        cfg,
		fake:       fake,
		server:     srv,
		socketPath: cfg.Bridge.Socket,
		configPath: configPath,
		baseDir:    base,
		cancel:     cancel,
	}

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return env
}

func runCLI(t *testing.T, args []string, socket, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--socket", socket}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[markers]\nprefix = %q\n\n[bridge]\nsocket = %q\n\n[paths]\nlog_dir = %q\n\n[journal]\nenabled = %t\npath = %q\n",
		cfg.Markers.Prefix,
		cfg.Bridge.Socket,
		cfg.Paths.LogDir,
		cfg.Journal.Enabled,
		cfg.Journal.Path,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// seededFakeHost builds a fake with one convention marker, a paired track
// duo, a caption inside the marker region, and a matching template.
func seededFakeHost() *testsupport.FakeHost {
	fake := testsupport.NewFakeHost("Episode 12")
	fake.MarkerList = []timeline.Marker{
		{Name: "::Main-StyleA", Frame: 100, Duration: 100},
		{Name: "chapter 2", Frame: 500},
	}
	fake.VideoTracks = []string{"Video 1", "::Main"}
	fake.CaptionTracks = []string{"::Main"}
	fake.AddCaption(1, "first line", 110, 20)
	fake.AddCaption(1, "second line", 150, 30)
	fake.Library = &host.TemplateFolder{
		Name:      "Library",
		Templates: []host.TemplateRef{{ID: "tmpl-a", Name: "StyleA"}},
	}
	fake.DefaultComponents = []host.Component{
		{ID: "tpl", Name: "Template", Attributes: []host.TextAttribute{{Name: "StyledText", Visible: true}}},
	}
	return fake
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
