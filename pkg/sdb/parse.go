package sdb

import (
	"strings"

	"github.com/delphix/sdb-go/pkg/diag"
)

// ExprKind distinguishes the two kinds of expressions in a line.
type ExprKind int

const (
	// CmdExpr is a command invocation; its tokens are the command name
	// followed by its arguments.
	CmdExpr ExprKind = iota
	// ShellExpr is a shell escape; its single token is the rest of the
	// line, handed to the shell verbatim.
	ShellExpr
)

// Expr is one expression of a tokenized line.
type Expr struct {
	Kind   ExprKind
	Tokens []string
}

const (
	whitespace = " \t"
	quotes     = `"'`
	delimiters = whitespace + quotes + "|!"
)

// Tokenize splits a line into pipeline expressions. Tokens are separated
// by whitespace or pipes; a quoted region forms a single token with the
// quotes stripped, and a backslash before the enclosing quote kind
// escapes it. Everything after a ! becomes a single ShellExpr.
func Tokenize(line string) ([]Expr, error) {
	var exprs []Expr
	var toks []string
	idx := 0
	for idx < len(line) {
		switch c := line[idx]; {
		case strings.IndexByte(whitespace, c) >= 0:
			idx++
		case c == '|':
			if len(toks) == 0 || idx == len(line)-1 {
				return nil, parseError(line, "freestanding pipe with no command", idx)
			}
			exprs = append(exprs, Expr{Kind: CmdExpr, Tokens: toks})
			toks = nil
			idx++
		case c == '!':
			lookahead := idx + 1
			for lookahead < len(line) && strings.IndexByte(whitespace, line[lookahead]) >= 0 {
				lookahead++
			}
			if lookahead == len(line) {
				return nil, parseError(line, "no shell command specified", idx)
			}
			if line[lookahead] == '=' {
				return nil, parseError(line, "predicates that use != as an operator should be quoted", idx)
			}
			if bang := strings.IndexByte(line[lookahead:], '!'); bang >= 0 {
				return nil, parseError(line, "Multiple ! not supported", lookahead+bang)
			}
			if len(toks) > 0 {
				exprs = append(exprs, Expr{Kind: CmdExpr, Tokens: toks})
			}
			shell := strings.TrimRight(line[lookahead:], whitespace)
			return append(exprs, Expr{Kind: ShellExpr, Tokens: []string{shell}}), nil
		case strings.IndexByte(quotes, c) >= 0:
			var token []byte
			strEnd := 0
			rest := line[idx+1:]
			for i := 0; i < len(rest); i++ {
				ch := rest[i]
				if ch == c {
					if len(token) > 0 && token[len(token)-1] == '\\' {
						token[len(token)-1] = ch
						continue
					}
					strEnd = i
					break
				}
				token = append(token, ch)
			}
			if strEnd == 0 {
				return nil, parseError(line, "unfinished string expression", idx)
			}
			toks = append(toks, string(token))
			idx += strEnd + 2
		default:
			end := idx + 1
			for end < len(line) && strings.IndexByte(delimiters, line[end]) < 0 {
				end++
			}
			toks = append(toks, line[idx:end])
			idx = end
		}
	}
	if len(toks) > 0 {
		exprs = append(exprs, Expr{Kind: CmdExpr, Tokens: toks})
	}
	return exprs, nil
}

func parseError(line, message string, idx int) error {
	return &diag.Error{
		Type:    "parse error",
		Message: message,
		Context: *diag.NewContext("sdb", line, diag.Ranging{From: idx, To: idx + 1}),
	}
}
