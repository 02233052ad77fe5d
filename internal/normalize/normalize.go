package normalize

import (
	"regexp"
	"strings"
)

const tokenPunctuation = `.,!?;:()[]{}"'`

// Normalizer applies the spoken-word rewriting pipeline to message text. It
// is built once per compile run and safe for reuse across messages.
type Normalizer struct {
	names     map[string]string
	acronyms  map[string]string
	waypoints map[string]struct{}
}

// New constructs a Normalizer. names maps speaker identifiers to display
// names, acronyms maps whole-token keys to their expansions, and waypoints
// lists literal tokens exempt from phonetic expansion (matched
// case-insensitively).
func New(names map[string]string, acronyms map[string]string, waypoints map[string]struct{}) *Normalizer {
	upper := make(map[string]struct{}, len(waypoints))
	for w := range waypoints {
		upper[strings.ToUpper(w)] = struct{}{}
	}
	return &Normalizer{
		names:     names,
		acronyms:  acronyms,
		waypoints: upper,
	}
}

// StripQuotes removes a matching pair of surrounding quotes and unescapes any
// quotes inside. This is the only point where quote characters are removed.
func StripQuotes(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			trimmed = trimmed[1 : len(trimmed)-1]
		}
	}
	trimmed = strings.ReplaceAll(trimmed, `\"`, `"`)
	return strings.ReplaceAll(trimmed, `\'`, "'")
}

// Normalize runs the full pipeline on one message.
func (n *Normalizer) Normalize(text string) string {
	text = StripQuotes(text)
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, n.normalizeToken(token))
	}
	return strings.Join(out, " ")
}

// wordRuns matches maximal alphanumeric runs, so any non-alphanumeric
// character acts as a substitution boundary.
var wordRuns = regexp.MustCompile(`[A-Za-z0-9]+`)

func (n *Normalizer) normalizeToken(token string) string {
	prefix, core, suffix := splitPunctuation(token)
	if core == "" {
		return token
	}

	// Speaker substitution runs first so acronym and phonetic expansion
	// never re-process a substituted display name. Identifiers are matched
	// on alphanumeric runs, so joined forms like APP/TWR substitute too.
	if replaced, ok := n.substituteSpeakers(core); ok {
		return prefix + replaced + suffix
	}

	if expansion, ok := n.acronyms[core]; ok {
		return prefix + expandExpansion(expansion) + suffix
	}

	if _, ok := n.waypoints[strings.ToUpper(core)]; ok {
		return token
	}

	if isSpellableToken(core) {
		return prefix + spellOut(core) + suffix
	}

	return expandDigits(token)
}

// substituteSpeakers replaces every alphanumeric run that exactly equals a
// speaker identifier with its display name. Reports whether anything was
// replaced; a token with at least one substitution is emitted as-is so the
// display names are never re-processed.
func (n *Normalizer) substituteSpeakers(core string) (string, bool) {
	matched := false
	out := wordRuns.ReplaceAllStringFunc(core, func(run string) string {
		if name, ok := n.names[run]; ok && name != "" {
			matched = true
			return name
		}
		return run
	})
	return out, matched
}

// expandExpansion runs an acronym's expansion text through the digit step so
// digits inside an expansion are spoken like any other transcript digits.
func expandExpansion(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = expandDigits(word)
	}
	return strings.Join(words, " ")
}

func splitPunctuation(token string) (prefix, core, suffix string) {
	start := 0
	for start < len(token) && strings.ContainsRune(tokenPunctuation, rune(token[start])) {
		start++
	}
	end := len(token)
	for end > start && strings.ContainsRune(tokenPunctuation, rune(token[end-1])) {
		end--
	}
	return token[:start], token[start:end], token[end:]
}

// isSpellableToken reports whether a token is made entirely of uppercase
// letters and digits with at least one letter, e.g. a callsign or squawk
// group like "DLH97V".
func isSpellableToken(core string) bool {
	hasLetter := false
	for _, r := range core {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return hasLetter
}

func spellOut(core string) string {
	words := make([]string, 0, len(core))
	for _, r := range core {
		if w, ok := natoTitle[r]; ok {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// expandDigits rewrites digit runs inside an ordinary token as spoken words,
// reading a dot between two digits as "decimal". Other characters pass
// through, keeping attached punctuation glued to the neighbouring word.
func expandDigits(token string) string {
	runes := []rune(token)
	var b strings.Builder
	lastWasWord := false

	appendWord := func(word string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		lastWasWord = true
	}

	for i, r := range runes {
		if r == '.' && i > 0 && i < len(runes)-1 && isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			appendWord(decimalWord)
			continue
		}
		if w, ok := digitWords[r]; ok {
			appendWord(w)
			continue
		}
		if lastWasWord && isWordRune(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasWord = false
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
