// Package types defines the entity types, wire constants, configuration and
// standard errors shared by the lantern index engine and its CLI.
package types
