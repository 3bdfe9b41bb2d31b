package log

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
)

// sensitiveKeys contains attribute keys that should always be masked.
// These keys commonly carry credentials when logging connection settings.
var sensitiveKeys = map[string]bool{
	"password":     true,
	"passwd":       true,
	"secret":       true,
	"token":        true,
	"credential":   true,
	"credentials":  true,
	"auth":         true,
	"database_url": true,
	"redis_url":    true,
}

// MaskValue is the string used to replace fully masked values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler to sanitize credential-bearing values.
// Connection URLs keep their host and scheme but lose embedded passwords;
// attributes with sensitive keys are masked entirely.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type SecureHandler struct {
	// handler is the underlying slog handler that receives sanitized records.
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, the returned SecureHandler uses slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and passes it to the underlying handler.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(h.sanitizeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are sanitized before being added.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = h.sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes a single attribute, recursively handling groups.
func (h *SecureHandler) sanitizeAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = h.sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	// URL-shaped values keep their shape with the password removed, so the
	// host being probed stays visible in the log.
	strVal := a.Value.String()
	if masked, ok := maskURLCredentials(strVal); ok {
		return slog.String(a.Key, masked)
	}

	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// maskURLCredentials replaces the password in a URL's userinfo section.
// Returns the original string and false when the value is not a URL with
// credentials.
func maskURLCredentials(s string) (string, bool) {
	if !strings.Contains(s, "://") || !strings.Contains(s, "@") {
		return s, false
	}

	u, err := url.Parse(s)
	if err != nil || u.User == nil {
		return s, false
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
		// url.String re-encodes the placeholder verbatim
		return strings.Replace(u.String(), ":xxxxx@", ":"+MaskValue+"@", 1), true
	}

	return s, false
}

// NewSecureLogger creates a new slog.Logger with secure handling.
// The logger masks credentials in all log output.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewSecureHandler(textHandler))
}
