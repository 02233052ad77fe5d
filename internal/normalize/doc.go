// Package normalize rewrites transcript message text into the spoken-word
// rendering that appears in subtitles and drives duration estimation.
//
// The pipeline order is fixed: speaker identifiers become display names
// first, then acronyms expand on exact whole-token matches, then waypoint
// tokens are exempted, and finally remaining all-uppercase tokens are spelled
// out with the ICAO phonetic alphabet and spoken digits. Punctuation stays
// attached to the token it came with, and quote characters are stripped
// exactly once before any other step runs.
package normalize
