// Package logger provides structured logging for injectkit using zerolog.
//
// It supports JSON and console output, level configuration from the
// environment, component-scoped loggers, and a named-logger registry so one
// process can hand different components differently configured loggers.
//
// # Usage
//
//	log := logger.Get("inject")
//	log.Debug("value registered", logger.Fields("key", "config.api"))
package logger
