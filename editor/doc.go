// Package editor provides a Bubble Tea token field component backed by the
// tokens and draft packages.
//
// The package translates key, mouse and focus messages into tokens.Field
// events, edits the draft when the field leaves a key unhandled, lays chips
// and the draft out in wrapped rows, and reports changes to the host.
package editor
