package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestResolveLogFilePathFallsBackToWorkdir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
	if filepath.Base(filepath.Dir(got)) != defaultLogDirName {
		t.Fatalf("unexpected log dir: %s", filepath.Dir(got))
	}
	if _, err := os.Stat(got); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
}

func TestReleaseModeWritesJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "catalog.log"})
	log.Info("catalog-release-line", zap.String("component", "search"))
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "catalog.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, `"message":"catalog-release-line"`) {
		t.Fatalf("expected json message field, got=%s", text)
	}
	if !strings.Contains(text, `"component":"search"`) {
		t.Fatalf("expected structured field, got=%s", text)
	}
}

func TestReleaseModeHonorsLevelOption(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Level: "warn", Dir: tmpDir, Filename: "warn.log"})
	log.Info("should-be-dropped")
	log.Warn("should-be-kept")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "warn.log"))
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	text := string(content)
	if strings.Contains(text, "should-be-dropped") {
		t.Fatalf("info line should be filtered at warn level: %s", text)
	}
	if !strings.Contains(text, "should-be-kept") {
		t.Fatalf("warn line missing: %s", text)
	}
}

func TestDebugModeDoesNotCreateFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug-line")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestResolveLevel(t *testing.T) {
	if resolveLevel("", true) != zap.DebugLevel {
		t.Fatalf("debug mode should default to debug level")
	}
	if resolveLevel("", false) != zap.InfoLevel {
		t.Fatalf("release mode should default to info level")
	}
	if resolveLevel("ERROR", false) != zap.ErrorLevel {
		t.Fatalf("explicit level should be parsed case-insensitively")
	}
	if resolveLevel("loud", false) != zap.InfoLevel {
		t.Fatalf("unknown level should fall back to mode default")
	}
}
