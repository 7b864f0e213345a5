package traverse

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// splitSelector splits a selector string into simple selectors, e.g.
//
//     "div.item #x, [role=button]"  →  "div" ".item" "#x" "[role=button]"
//
// A new simple selector starts at '.', '#' and '['. Blanks, commas and
// comments separate simple selectors. Within brackets everything up to the
// closing bracket is kept verbatim.
func splitSelector(selector string) ([]string, error) {
	var clauses []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			clauses = append(clauses, current.String())
			current.Reset()
		}
	}
	inAttribute := false
	s := scanner.New(selector)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if inAttribute {
				return nil, fmt.Errorf("%w: unterminated attribute clause in %q", ErrInvalidSelector, selector)
			}
			flush()
			return clauses, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: cannot tokenize %q at column %d", ErrInvalidSelector, selector, tok.Column)
		}
		if inAttribute {
			current.WriteString(tok.Value)
			if isChar(tok, "]") {
				inAttribute = false
				flush()
			}
			continue
		}
		switch {
		case tok.Type == scanner.TokenS, tok.Type == scanner.TokenComment, isChar(tok, ","):
			flush()
		case isChar(tok, "["):
			flush()
			inAttribute = true
			current.WriteString(tok.Value)
		case isChar(tok, "."), isChar(tok, "#"), tok.Type == scanner.TokenHash:
			flush()
			current.WriteString(tok.Value)
		case isNumeric(tok) && strings.HasPrefix(tok.Value, "."):
			flush() // ".5x" is a class selector, not a number
			current.WriteString(tok.Value)
		default:
			current.WriteString(tok.Value)
		}
	}
}

func isChar(tok *scanner.Token, c string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == c
}

func isNumeric(tok *scanner.Token) bool {
	return tok.Type == scanner.TokenNumber || tok.Type == scanner.TokenDimension ||
		tok.Type == scanner.TokenPercentage
}
