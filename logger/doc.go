// Package logger is the emission API for log messages.
//
// Functions take the effects.Stack explicitly rather than consulting
// process-wide state, so independent scopes (and independent tests)
// never contaminate each other:
//
//	stack := effects.New()
//	w, _ := writer.Open(stack, os.Stderr, writer.Options{})
//	defer w.Close()
//
//	logger.Info(stack, "ready")
//	logger.Debugf(stack, "resolved %d targets", n)
//
// Messages are stringified only when a renderer formats them; the *f
// variants defer their fmt.Sprintf the same way via Lazy. Errors
// returned here are rendering failures surfaced from the handlers;
// losing output silently would be worse than failing the call.
package logger
