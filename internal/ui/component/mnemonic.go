package component

import "strings"

// MnemonicLabel converts an "&"-style label ("I'm &Finished") to GTK's
// underscore form ("I'm _Finished"). "&&" is a literal ampersand and
// literal underscores are escaped.
func MnemonicLabel(label string) string {
	var sb strings.Builder
	sb.Grow(len(label) + 2)
	runes := []rune(label)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '_':
			sb.WriteString("__")
		case '&':
			if i+1 < len(runes) && runes[i+1] == '&' {
				sb.WriteRune('&')
				i++
				continue
			}
			if i+1 < len(runes) {
				sb.WriteRune('_')
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// PlainLabel strips mnemonic markers, for tooltips and logs.
func PlainLabel(label string) string {
	return strings.NewReplacer("&&", "&", "&", "").Replace(label)
}
