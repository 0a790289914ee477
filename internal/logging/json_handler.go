package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// jsonKeys renames the built-in record keys for machine-readable output.
var jsonKeys = map[string]string{
	slog.TimeKey:    "ts",
	slog.LevelKey:   "level",
	slog.MessageKey: "msg",
	slog.SourceKey:  "source",
}

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: replaceJSONAttr,
	})
}

func replaceJSONAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	key, builtin := jsonKeys[attr.Key]
	if !builtin {
		return attr
	}
	attr.Key = key
	switch v := attr.Value.Any().(type) {
	case time.Time:
		attr.Value = slog.StringValue(v.UTC().Format(time.RFC3339))
	case slog.Level:
		attr.Value = slog.StringValue(strings.ToLower(v.String()))
	case *slog.Source:
		attr.Value = slog.StringValue(sourceLocation(v))
	}
	return attr
}
