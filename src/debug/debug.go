package debug

import (
	"log/slog"
	"runtime"
	"strings"
)

func Init(level string) {
	slog.SetLogLoggerLevel(getLogLevel(level))
}

// RuntimeAttr groups msg with the caller's file and line.
func RuntimeAttr(msg string) slog.Attr {
	return runtimeAttr(2, msg)
}

func Debug(msg string) {
	slog.Debug("debug", runtimeAttr(2, msg))
}

func runtimeAttr(skip int, msg string) slog.Attr {
	_, file, line, ok := runtime.Caller(skip)
	if ok {
		return slog.Group("runtime",
			slog.String("file", file),
			slog.Int("line", line),
			slog.String("msg", msg),
		)
	}
	return slog.String("msg", msg)
}

func getLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
