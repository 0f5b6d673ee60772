//go:build mage

// Package main provides build targets for the lantern project using Mage.
//
// Usage:
//
//	mage build          Compile the lantern binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests in short mode
//	mage test:cover     Run tests with a coverage profile
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install lantern to GOPATH/bin
//	mage stats          Print Go LOC counts
package main
