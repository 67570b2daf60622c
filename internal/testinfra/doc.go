// Package testinfra provides test infrastructure for integration testing with containers.
//
// Everything except this file builds only with the integration tag:
//
//	go test -tags integration ./...
//
// Tests skip themselves when no Docker daemon is reachable.
package testinfra
