package logger

import (
	"log/slog"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Result renders a validation result as the group "result" holding
// "valid" and, when present, "errors".
func Result(r validator.Result) slog.Attr {
	attrs := []slog.Attr{slog.Bool("valid", r.IsValid)}
	if len(r.Errors) > 0 {
		attrs = append(attrs, slog.Any("errors", r.Errors))
	}
	return Group("result", attrs...)
}
