// Package environment names the environments the CLI can run in
// (development, staging, production) and normalizes configured values,
// including the short aliases dev, stage and prod, into them.
package environment
