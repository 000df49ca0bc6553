// Package tokens implements the rendering-free state machine behind a token
// field: an ordered collection of unique tokens, the position of the single
// shared draft editor among them, and the key/pointer protocol that moves
// between states.
//
// Invalid operations (duplicate inserts, out-of-range indexes, empty commits,
// moving left of the first token) are silent no-ops. Methods report whether
// anything changed, never an error.
//
// A Field is driven from one event loop and is not safe for concurrent use.
package tokens
