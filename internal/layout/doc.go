// Package layout breaks normalized message text into explicit subtitle lines
// and computes background box geometry.
//
// Widths are estimated in font-size units from a per-character table rather
// than measured from font metrics, which keeps wrapping deterministic across
// platforms. The wrap is a greedy word fill: a word that would push the line
// over budget starts a new line, and a single word wider than the budget
// stays unbroken on its own line.
package layout
