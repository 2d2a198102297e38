// Package log provides the logging abstraction used by kaminari components.
//
// Library packages never write logs on their own: they accept a [Logger]
// through a functional option and default to [NoopLogger]. A zerolog adapter
// is provided for applications that want output.
//
// # Usage
//
//	logger, err := log.NewZerologAdapter(os.Stderr, "debug", log.FormatConsole)
//	if err != nil {
//	    return err
//	}
//	r := render.New(render.WithLogger(logger))
//
// # Custom Loggers
//
// Implement [Logger] to route messages elsewhere:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
