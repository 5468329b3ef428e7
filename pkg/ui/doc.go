// Package ui decides whether output gets ANSI styling and renders
// command-line errors.
package ui
