// Package log defines the logging interface the report package writes to.
//
// The zap package provides the production implementation; NewNop discards everything.
package log
