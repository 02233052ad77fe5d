package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ICAO phonetic alphabet and spoken-digit words. "niner" is the standard
// radiotelephony form of 9.
var natoWords = map[rune]string{
	'A': "alfa",
	'B': "bravo",
	'C': "charlie",
	'D': "delta",
	'E': "echo",
	'F': "foxtrot",
	'G': "golf",
	'H': "hotel",
	'I': "india",
	'J': "juliett",
	'K': "kilo",
	'L': "lima",
	'M': "mike",
	'N': "november",
	'O': "oscar",
	'P': "papa",
	'Q': "quebec",
	'R': "romeo",
	'S': "sierra",
	'T': "tango",
	'U': "uniform",
	'V': "victor",
	'W': "whiskey",
	'X': "xray",
	'Y': "yankee",
	'Z': "zulu",
}

var digitWords = map[rune]string{
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "niner",
}

const decimalWord = "decimal"

// natoTitle holds the display forms used when a whole token is spelled out
// phonetically, e.g. "DLH97V" -> "Delta Lima Hotel Niner Seven Victor".
var natoTitle = buildTitleWords()

func buildTitleWords() map[rune]string {
	caser := cases.Title(language.English)
	words := make(map[rune]string, len(natoWords)+len(digitWords))
	for r, w := range natoWords {
		words[r] = caser.String(w)
	}
	for r, w := range digitWords {
		words[r] = caser.String(w)
	}
	return words
}
