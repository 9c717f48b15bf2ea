// Package internal documents the calendar MCP server internals.
//
// The internal tree is organized by responsibility:
// - domain/calendar: the entity save pipeline (normalization, defaults, validation)
// - wordpress: REST gateway to the remote CMS calendar plugin
// - mcp: MCP server wiring, transports, and the tool surface
// - config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
