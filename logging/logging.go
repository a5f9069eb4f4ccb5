package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/tree"
)

// Tree paths read by ConfigFromNode.
const (
	LevelPath  = "log.level"
	FormatPath = "log.format"
	SourcePath = "log.source"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
	// Format is "json" (default) or "text".
	Format    string
	AddSource bool
}

// ConfigFromNode reads the logger settings stored under the log.* paths of a configuration tree.
// Missing or mistyped entries leave the corresponding zero value, which NewLogger treats as a default.
func ConfigFromNode(node *tree.Node) LoggerConfig {
	if node == nil {
		return LoggerConfig{}
	}

	return LoggerConfig{
		Level:     node.GetString(LevelPath, ""),
		Format:    node.GetString(FormatPath, ""),
		AddSource: node.GetBool(SourcePath, false),
	}
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   config.AddSource,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
