// Package cli holds what md2html and md2pdf share: the injectable
// Environment, exit codes, config resolution, error reporting and process
// setup (logger, GOMAXPROCS, signal handling).
package cli
