// Package draft implements the single-line text a user types before it is
// committed as a token.
//
// Offsets are 0-based grapheme cluster indexes. A selection is the half-open
// range [Start, End) between an anchor and the cursor.
package draft
