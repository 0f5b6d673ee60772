// Package lantern holds build metadata for the lantern binary.
package lantern

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/lantern/pkg/lantern.Version=...".
var Version = "0.1.0"
