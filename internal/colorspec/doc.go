// Package colorspec resolves user-facing color tokens into RGBA values and
// the ASS channel encodings the subtitle writer needs.
//
// Tokens may be 6-digit hex, 8-digit hex with a leading or trailing alpha
// byte depending on the configured convention, or CSS color names. ASS text
// colors always render fully opaque; background box colors preserve alpha,
// inverted into the ASS convention where 00 means opaque.
package colorspec
