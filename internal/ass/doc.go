// Package ass renders the compiled timeline as an Advanced SubStation Alpha
// (v4.00+) document.
//
// Event timestamps are written with centisecond precision, truncated rather
// than rounded so adjacent events never overlap from rounding up. Dialogue
// text carries a no-auto-wrap override and explicit \N breaks; the wrapper
// owns all line breaking decisions.
package ass
