// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors that keep key names consistent.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format, applies the minimum level and attaches any static
// attributes. WithEnvironment picks sensible defaults per environment.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "formcheck"),
//	    logger.WithLevel(level),
//	)
//	log.Debug("field checked", logger.Field("email"), logger.Result(result))
package logger
