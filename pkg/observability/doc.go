/*
Package observability provides tools for monitoring the emulator.

It exposes Prometheus collectors fed by engine lifecycle hooks, so any machine, run by
the CLI, the HTTP server or the MCP server, can be observed the same way.
*/
package observability
