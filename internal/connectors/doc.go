// Package connectors provides implementations of the driven file-access
// ports. Each connector knows how to discover and read documentation
// files from a specific source type; today that is the local filesystem.
package connectors
