package relevance

import (
	"strings"
	"unicode"
)

// Highlight markers emitted around every query match.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// highlightAll wraps every case-insensitive occurrence of query in text
// with the highlight markers. The query is treated as literal text, never
// as a pattern: a query full of regex metacharacters is matched verbatim.
// Occurrences are found left to right without overlap. Matching is done
// rune-wise so multi-byte text keeps its original casing in the output.
func highlightAll(text, query string) string {
	if query == "" {
		return text
	}

	runes := []rune(text)
	lower := lowerRunes(runes)
	q := lowerRunes([]rune(query))
	if len(q) > len(runes) {
		return text
	}

	var b strings.Builder
	start := 0
	for i := 0; i+len(q) <= len(lower); {
		if !runesEqual(lower[i:i+len(q)], q) {
			i++
			continue
		}
		b.WriteString(string(runes[start:i]))
		b.WriteString(markOpen)
		b.WriteString(string(runes[i : i+len(q)]))
		b.WriteString(markClose)
		i += len(q)
		start = i
	}
	if start == 0 {
		return text
	}
	b.WriteString(string(runes[start:]))
	return b.String()
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// highlightSentences splits text on sentence terminators, keeps sentences
// containing the query, and returns up to max highlighted fragments.
func highlightSentences(text, query string, max int) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var fragments []string
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" || !containsFold(sentence, query) {
			continue
		}
		fragments = append(fragments, highlightAll(sentence, query))
		if len(fragments) >= max {
			break
		}
	}
	return fragments
}
