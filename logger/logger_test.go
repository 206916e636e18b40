package logger

import (
	"path/filepath"
	"testing"

	"intent_search/config"
)

func TestLogBeforeInit(t *testing.T) {
	// Init之前也必须可用：库代码（缓存淘汰、循环回退）会直接打日志
	if Logger == nil {
		t.Fatal("Logger is nil before Init")
	}
	Debug("debug before init")
	Info("info before init")
	Warn("warn before init")
	Error("error before init")
}

func TestInitReplacesLogger(t *testing.T) {
	previous := Logger

	var cfg config.Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	cfg.Log.Output = "file"
	cfg.Log.FilePath = filepath.Join(t.TempDir(), "app.log")

	if err := Init(&cfg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger == nil || Logger == previous {
		t.Error("Init did not replace the global logger")
	}
	Info("after init", "key", "value")
}
