// Package main provides the entry point for the CMS API service.
// It initializes and runs a web server using the Fiber framework that
// exposes the public API surface of the CMS backend. All runtime settings
// are collected from the process environment (optionally overlaid by a
// local env file) into a single immutable settings value at startup.
package main
