// Package template defines the renderer-agnostic template seam used by the
// scaffold and the preview server. The pongo subpackage provides the default
// implementation.
package template
