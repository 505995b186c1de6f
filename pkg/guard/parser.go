package guard

import (
	"strconv"
	"strings"
)

// ParseRules parses a rule-string into its ordered rule tokens.
//
// Grammar:
//
//	rules  := rule ("|" rule)*
//	rule   := ["!"] name [ "[" args "]" | "(" args ")" ]
//	name   := [a-zA-Z0-9_]+
//	args   := [ arg ("," arg)* ]
//	arg    := number | bool | null | quoted | regex | list | bare
//	regex  := r"..."            (backslash escapes \" and \\)
//	list   := "[" args "]" | "(" args ")"
//	bare   := any run of characters up to a punctuator, trimmed
//
// Bare tokens are classified: true/false parse as booleans, none/null as
// null, integer and decimal literals as numbers, anything else as a string.
func ParseRules(statement string) ([]Token, error) {
	p := &parser{input: statement}

	var tokens []Token
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		if len(tokens) > 0 {
			if p.peek() != '|' {
				return nil, p.errExpected(`"|"`)
			}
			p.pos++
			p.skipSpace()
		}
		tok, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		return nil, p.errExpected("rule name")
	}
	return tokens, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

// peek2 returns the next two bytes, or 0 padding at end of input.
func (p *parser) peek2() (byte, byte) {
	var b2 byte
	if p.pos+1 < len(p.input) {
		b2 = p.input[p.pos+1]
	}
	return p.peek(), b2
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) errExpected(what string) *SyntaxError {
	return &SyntaxError{Statement: p.input, Pos: p.pos, Expected: what}
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (p *parser) parseRule() (Token, error) {
	var tok Token

	if p.peek() == '!' {
		tok.Negate = true
		p.pos++
	}

	start := p.pos
	for !p.eof() && isNameChar(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return tok, p.errExpected("rule name")
	}
	tok.Name = p.input[start:p.pos]

	if c := p.peek(); c == '[' || c == '(' {
		closer := byte(']')
		if c == '(' {
			closer = ')'
		}
		p.pos++
		args, err := p.parseArgs(closer)
		if err != nil {
			return tok, err
		}
		tok.Args = args
	}
	return tok, nil
}

// parseArgs consumes a comma-separated argument list and its closing
// punctuator.
func (p *parser) parseArgs(closer byte) ([]Arg, error) {
	var args []Arg
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errExpected("closing " + strconv.Quote(string(closer)))
		}
		if p.peek() == closer {
			p.pos++
			return args, nil
		}
		if len(args) > 0 {
			if p.peek() != ',' {
				return nil, p.errExpected(`"," or closing ` + strconv.Quote(string(closer)))
			}
			p.pos++
			p.skipSpace()
		}
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func (p *parser) parseArg() (Arg, error) {
	c1, c2 := p.peek2()
	switch {
	case c1 == '[':
		p.pos++
		items, err := p.parseArgs(']')
		if err != nil {
			return Arg{}, err
		}
		return ListArg(items...), nil
	case c1 == '(':
		p.pos++
		items, err := p.parseArgs(')')
		if err != nil {
			return Arg{}, err
		}
		return ListArg(items...), nil
	case c1 == 'r' && c2 == '"':
		p.pos++
		s, err := p.parseQuoted()
		if err != nil {
			return Arg{}, err
		}
		return StringArg(s), nil
	case c1 == '"':
		s, err := p.parseQuoted()
		if err != nil {
			return Arg{}, err
		}
		return StringArg(s), nil
	default:
		return p.parseBare()
	}
}

// parseQuoted consumes a double-quoted string. \" and \\ unescape; any other
// backslash sequence is kept verbatim so regex character classes survive.
func (p *parser) parseQuoted() (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errExpected(`closing "\""`)
		}
		c := p.input[p.pos]
		switch c {
		case '"':
			p.pos++
			return sb.String(), nil
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", p.errExpected(`closing "\""`)
			}
			next := p.input[p.pos+1]
			if next == '"' || next == '\\' {
				sb.WriteByte(next)
			} else {
				sb.WriteByte('\\')
				sb.WriteByte(next)
			}
			p.pos += 2
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
}

// parseBare consumes an unquoted token up to the next punctuator and
// classifies it as bool, null, number, or string.
func (p *parser) parseBare() (Arg, error) {
	start := p.pos
	for !p.eof() && !isPunctuator(p.input[p.pos]) {
		p.pos++
	}
	token := strings.TrimSpace(p.input[start:p.pos])
	if token == "" {
		return Arg{}, &SyntaxError{Statement: p.input, Pos: start, Expected: "argument"}
	}

	switch strings.ToLower(token) {
	case "true":
		return BoolArg(true), nil
	case "false":
		return BoolArg(false), nil
	case "none", "null":
		return NullArg(), nil
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return IntArg(i), nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return FloatArg(f), nil
	}
	return StringArg(token), nil
}

func isPunctuator(c byte) bool {
	switch c {
	case '[', ']', '(', ')', ',', '"', '|':
		return true
	}
	return false
}
