package abc

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type Language string

const (
	Default Language = "us"
	French  Language = "fr"
)

// ParseLanguage maps a BCP 47 tag to the substitution table to use. Any
// French variant selects French; other well formed tags get no
// substitution.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "us", "default":
		return Default, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default, fmt.Errorf("unknown language %q: %w", s, err)
	}
	base, _ := tag.Base()
	if base.String() == "fr" {
		return French, nil
	}
	return Default, nil
}

type substitution struct {
	from string
	to   string
}

var frenchTable = []substitution{
	{"do", "c"},
	{"d", "#"},
	{"re", "d"},
	{"ré", "d"},
	{"mi", "e"},
	{"fa", "f"},
	{"sol", "g"},
	{"la", "a"},
	{"si", "b"},
}

var substitutions = map[Language][]substitution{
	French: withUpper(frenchTable),
}

// withUpper adds the uppercase variant of every entry and orders the result
// longest first, so "do" is tried before "d".
func withUpper(table []substitution) []substitution {
	res := make([]substitution, 0, 2*len(table))
	res = append(res, table...)
	for _, s := range table {
		res = append(res, substitution{strings.ToUpper(s.from), strings.ToUpper(s.to)})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return utf8.RuneCountInString(res[i].from) > utf8.RuneCountInString(res[j].from)
	})
	return res
}

// Translate rewrites text for lang in one left to right pass. At each
// position the longest matching token wins and replaced output is never
// scanned again.
func Translate(text string, lang Language) string {
	table, ok := substitutions[lang]
	if !ok {
		return text
	}
	text = norm.NFC.String(text)

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		matched := false
		for _, s := range table {
			if strings.HasPrefix(text[i:], s.from) {
				sb.WriteString(s.to)
				i += len(s.from)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text[i:])
			sb.WriteString(text[i : i+size])
			i += size
		}
	}
	return sb.String()
}
