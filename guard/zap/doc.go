// Package zap adapts go.uber.org/zap to the guard log.Logger interface.
package zap
