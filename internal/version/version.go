// Package version carries build metadata injected with -ldflags "-X plazas-monitor/internal/version.Commit=<sha>".
package version

var Commit = "dev"
