package engine

import "strings"

// preprocessSource rewrites script source into what zygomys accepts:
//
//   - :name becomes the string "__kw_name", so keywords never collide with
//     variables of the same name;
//   - grid-beam becomes grid_beam, since zygomys reads a hyphen as minus;
//   - ; comments become // comments.
//
// String literals and comment bodies pass through untouched. A hyphen only
// counts as part of a name when a name character precedes it and a letter
// follows it, so (- a 1) and x-1 keep their minus.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)

	for i := 0; i < len(source); {
		c := source[i]
		switch {
		case c == '"':
			end := quotedEnd(source, i)
			out.WriteString(source[i:end])
			i = end

		case c == '`':
			end := len(source)
			if j := strings.IndexByte(source[i+1:], '`'); j >= 0 {
				end = i + 1 + j + 1
			}
			out.WriteString(source[i:end])
			i = end

		case c == ';':
			for i < len(source) && source[i] == ';' {
				i++
			}
			end := len(source)
			if j := strings.IndexByte(source[i:], '\n'); j >= 0 {
				end = i + j
			}
			out.WriteString("//")
			out.WriteString(source[i:end])
			i = end

		case c == ':' && i+1 < len(source) && isLetter(source[i+1]):
			end := i + 1
			for end < len(source) && isKeywordChar(source[end]) {
				end++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.WriteString(source[i+1 : end])
			out.WriteByte('"')
			i = end

		case c == '-' && i > 0 && i+1 < len(source) && isNameChar(source[i-1]) && isLetter(source[i+1]):
			out.WriteByte('_')
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// quotedEnd returns the index just past the double-quoted literal that
// starts at i, honoring backslash escapes. An unterminated literal runs to
// the end of src.
func quotedEnd(src string, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(src)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isKeywordChar(c byte) bool {
	return isNameChar(c) || c == '-'
}
