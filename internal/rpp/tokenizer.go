package rpp

import "strings"

type token struct {
	text   string
	quoted bool
}

// tokenizeLine splits a line into tokens. Double, single, and backtick
// quotes delimit tokens that may contain spaces; the quote characters are
// stripped. An unquoted "<" begins an opaque run consumed through the
// matching ">" on the same line, kept verbatim inside its token (REAPER
// embeds binary signatures that way).
func tokenizeLine(line string) []token {
	var tokens []token
	i := 0
	n := len(line)
	for i < n {
		switch line[i] {
		case ' ', '\t':
			i++
			continue
		case '"', '\'', '`':
			quote := line[i]
			i++
			start := i
			for i < n && line[i] != quote {
				i++
			}
			tokens = append(tokens, token{text: line[start:i], quoted: true})
			if i < n {
				i++ // closing quote
			}
		default:
			start := i
			for i < n && line[i] != ' ' && line[i] != '\t' {
				if line[i] == '<' {
					// opaque inline run: consume through the matching ">"
					i++
					for i < n && line[i] != '>' {
						i++
					}
					if i < n {
						i++
					}
					continue
				}
				i++
			}
			tokens = append(tokens, token{text: line[start:i]})
		}
	}
	return tokens
}

const quoteCandidates = "\"'`"

// formatToken renders a token for output, choosing a quote style the same
// way REAPER does: bare when possible, double quotes by default, single
// quotes when the value contains a double quote, backticks when it contains
// both.
func formatToken(text string, wasQuoted bool) string {
	if !wasQuoted && !needsQuoting(text) {
		return text
	}
	switch {
	case !strings.Contains(text, `"`):
		return `"` + text + `"`
	case !strings.Contains(text, "'"):
		return "'" + text + "'"
	default:
		return "`" + strings.ReplaceAll(text, "`", "'") + "`"
	}
}

func needsQuoting(text string) bool {
	if text == "" {
		return true
	}
	if strings.ContainsAny(text, " \t") {
		return true
	}
	return strings.ContainsAny(text[:1], quoteCandidates)
}

// formatLine regenerates the textual form of a node's own line, without
// indentation or the leading "<" of block openers.
func formatLine(n *Node) string {
	var sb strings.Builder
	sb.WriteString(n.Tag)
	for i, attr := range n.Attrib {
		sb.WriteByte(' ')
		if strings.HasPrefix(attr, "<") {
			// opaque inline run, emitted verbatim
			sb.WriteString(attr)
			continue
		}
		sb.WriteString(formatToken(attr, n.AttrQuoted(i)))
	}
	return sb.String()
}
