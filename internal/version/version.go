// Package version is overridden at link time:
//
//	go build -ldflags "-X unitigseq/internal/version.Version=1.2.3" ./cmd/unitigseq
package version

var Version = "0.1.0-dev"
