// Package constant defines the telemetry names shared by the guard reporting packages.
package constant
