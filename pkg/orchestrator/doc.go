// Package orchestrator wires the page pipeline (loader, HTML parser, optional
// scaffold, panel controller, runtime asset linking, renderer) behind a single
// entry point for the CLI and the preview server.
package orchestrator
