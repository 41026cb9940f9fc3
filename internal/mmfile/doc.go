// Package mmfile loads forging inputs whole. Files are memory-mapped
// read-only where the platform allows it and read into memory elsewhere,
// behind the same File type either way.
package mmfile
