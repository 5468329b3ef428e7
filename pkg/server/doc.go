// Package server exposes the renderer over HTTP. Clients POST a
// documentation-node document to /render and receive the plain-text report.
package server
