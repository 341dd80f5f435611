// Package config provides configuration structures and utilities for docgen.
// It defines the main options for source discovery, rendering, backup,
// and report generation, plus loading of the optional .docgen project file.
package config
