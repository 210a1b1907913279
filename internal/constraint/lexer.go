package constraint

import "unicode"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenInt
	tokenWord
	tokenComma
	tokenDash
	tokenSlash
	tokenColon
)

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset into the original input
}

// lex splits the input into integers, words and the punctuation the grammar
// knows about. Whitespace separates tokens and is otherwise ignored.
func lex(input string) ([]token, *SyntaxError) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == ',':
			toks = append(toks, token{kind: tokenComma, text: ",", pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokenDash, text: "-", pos: i})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokenSlash, text: "/", pos: i})
			i++
		case r == ':':
			toks = append(toks, token{kind: tokenColon, text: ":", pos: i})
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokenInt, text: string(runes[start:i]), pos: start})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokenWord, text: string(runes[start:i]), pos: start})
		default:
			return nil, &SyntaxError{
				Input:    input,
				Pos:      i,
				Expected: []string{"WEEKDAY", "MONTH", "INT"},
			}
		}
	}
	toks = append(toks, token{kind: tokenEOF, text: "", pos: len(runes)})
	return toks, nil
}
