package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

// LogType tags each record with the subsystem it came from.
type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// Handler is a colorized console slog.Handler. Records carry a "type" attr
// ("cmd", "db", "error") that selects the subsystem tag; everything else is
// rendered inline.
type Handler struct {
	opts  *slog.HandlerOptions
	attrs []slog.Attr
}

func NewHandler() *Handler {
	return &Handler{opts: &slog.HandlerOptions{Level: slog.LevelDebug}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{opts: h.opts, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkipLog(&r) {
		return nil
	}

	var levelColor, levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelColor, levelText = colorPurple, "DEBUG"
	case slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	case slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	}

	logType := TypeSystem
	var attrsStr strings.Builder
	appendAttr := func(a slog.Attr) {
		if a.Key == "type" {
			switch a.Value.String() {
			case "cmd":
				logType = TypeCommand
			case "db":
				logType = TypeDB
			case "error":
				logType = TypeError
			}
			return
		}
		fmt.Fprintf(&attrsStr, " %s=%v", a.Key, a.Value)
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	fmt.Printf("%s[Irene] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		time.Now().Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		logType,
		r.Message,
		attrsStr.String(),
		colorReset,
	)
	return nil
}

// shouldSkipLog drops the gateway chatter disgo emits at debug level.
func shouldSkipLog(r *slog.Record) bool {
	skipped := []string{
		"gateway event",
		"received gateway message",
		"sending gateway command",
		"sending heartbeat",
		"locking rest bucket",
		"unlocking rest bucket",
		"new request",
		"new response",
	}
	msg := strings.ToLower(r.Message)
	for _, skip := range skipped {
		if strings.Contains(msg, skip) {
			return true
		}
	}
	return false
}
