// Package server hosts the preview server: injected pages, field inspection
// JSON, the embedded runtime assets and sockjs toggle sessions, all on a gin
// engine.
package server
