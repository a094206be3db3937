package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var base zerolog.Logger

func init() {
	Setup("info", "json", os.Stdout)
}

// Setup configures the process-wide logger. format "console" switches to
// the human-readable writer; anything else emits JSON lines.
func Setup(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	zerolog.TimeFieldFormat = time.RFC3339
	base = zerolog.New(out).With().Timestamp().Str("service", "techstore").Logger().Level(ParseLevel(level))
}

func ParseLevel(value string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func event(e *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e = e.Str("action", action)
	if c != nil {
		e = e.Str("ip", c.IP()).Str("method", c.Method()).Str("path", c.Path())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("req_id", rid)
		}
	}
	if err != nil {
		e = e.Err(err)
	}
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	event(base.Info(), c, action, nil, fields)
}

// Audit records a user-visible state change (login, logout, registration).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	event(base.Info().Str("kind", "audit"), c, action, nil, fields)
}

// Security records a rejected or suspicious request.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	event(base.Warn(), c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	event(base.Error(), c, action, err, fields)
}
