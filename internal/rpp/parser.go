package rpp

import (
	"fmt"
	"strings"
)

// ParseError describes a structural failure in the project grammar. It names
// the offending line so callers can surface a useful diagnostic.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse project: line %d: %s", e.Line, e.Msg)
	}
	return "parse project: " + e.Msg
}

// Parse builds a document tree from raw project text. The returned node is
// the top-level block (REAPER_PROJECT in well-formed files). Unbalanced
// block markers and empty input are fatal; malformed attribute values are
// not, they stay strings until semantic extraction coerces them.
func Parse(data []byte) (*Node, error) {
	return ParseString(string(data))
}

// ParseString is Parse for an in-memory string.
func ParseString(text string) (*Node, error) {
	text = normalizeNewlines(text)

	var root *Node
	stack := make([]*Node, 0, 16)

	lineNo := 0
	for len(text) > 0 {
		line := text
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			line = text[:idx]
			text = text[idx+1:]
		} else {
			text = ""
		}
		lineNo++

		trimmed := strings.Trim(line, " \t")
		if trimmed == "" {
			continue
		}

		switch {
		case trimmed == ">":
			if len(stack) == 0 {
				return nil, &ParseError{Line: lineNo, Msg: "unexpected block close"}
			}
			stack = stack[:len(stack)-1]

		case trimmed[0] == '<':
			tokens := tokenizeLine(trimmed[1:])
			if len(tokens) == 0 {
				return nil, &ParseError{Line: lineNo, Msg: "block open without a tag"}
			}
			node := &Node{
				Tag:   tokens[0].text,
				Block: true,
				raw:   trimmed,
			}
			attachTokens(node, tokens[1:])
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Line: lineNo, Msg: "content after top-level block"}
				}
				root = node
			} else {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, node)
			}
			stack = append(stack, node)

		default:
			if len(stack) == 0 {
				return nil, &ParseError{Line: lineNo, Msg: "attribute line outside any block"}
			}
			tokens := tokenizeLine(trimmed)
			node := &Node{raw: trimmed}
			if len(tokens) > 0 {
				node.Tag = tokens[0].text
				attachTokens(node, tokens[1:])
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, node)
		}
	}

	if len(stack) > 0 {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("%d unclosed block(s) at end of input", len(stack))}
	}
	if root == nil {
		return nil, &ParseError{Msg: "empty input, no top-level block"}
	}
	return root, nil
}

func attachTokens(n *Node, tokens []token) {
	if len(tokens) == 0 {
		return
	}
	n.Attrib = make([]string, len(tokens))
	n.quoted = make([]bool, len(tokens))
	for i, tok := range tokens {
		n.Attrib[i] = tok.text
		n.quoted[i] = tok.quoted
	}
}

func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
