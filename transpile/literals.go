package transpile

import (
	"regexp"
	"strconv"
)

var (
	stringLiteralRe = regexp.MustCompile(`"([^"\\]*(\\.[^"\\]*)*)"`)
	placeholderRe   = regexp.MustCompile(`__STR(\d+)__`)
)

func placeholder(i int) string {
	return "__STR" + strconv.Itoa(i) + "__"
}

// protectLiterals swaps every double-quoted literal for a positional
// placeholder and returns the literals in encounter order.
func protectLiterals(s string) (string, []string) {
	var vault []string
	out := stringLiteralRe.ReplaceAllStringFunc(s, func(lit string) string {
		vault = append(vault, lit)
		return placeholder(len(vault) - 1)
	})
	return out, vault
}

// restoreLiterals puts each literal back in place of its placeholder, in a
// single left-to-right pass. Each index is restored at its first occurrence
// only, and restored text is never scanned again, so a literal that itself
// reads like a placeholder stays as written.
func restoreLiterals(s string, vault []string) string {
	restored := make([]bool, len(vault))
	return placeholderRe.ReplaceAllStringFunc(s, func(ph string) string {
		i, err := strconv.Atoi(ph[len("__STR") : len(ph)-len("__")])
		if err != nil || i >= len(vault) || restored[i] {
			return ph
		}
		restored[i] = true
		return vault[i]
	})
}

// maskLiterals returns a copy of s in which the content of every string
// literal is overwritten with '#'. Offsets are preserved, so positions found
// in the mask apply to s unchanged.
func maskLiterals(s string) string {
	locs := stringLiteralRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}
	b := []byte(s)
	for _, loc := range locs {
		for i := loc[0] + 1; i < loc[1]-1; i++ {
			b[i] = '#'
		}
	}
	return string(b)
}
