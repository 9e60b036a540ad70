// Package file provides the file-based configuration store. Settings are
// persisted as TOML under the user's ddsdocs config directory.
package file
