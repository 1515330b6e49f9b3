// Package logger builds the zap loggers used by the versiontag command.
// Library packages take a *zap.Logger as an option and never build their own.
package logger
