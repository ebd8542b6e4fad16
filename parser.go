package lsys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ruleParser scans one rule string. Nested brackets are parsed by a child
// parser over the bracket's contents; base keeps error positions relative
// to the text the caller passed in.
type ruleParser struct {
	input string
	src   string
	pos   int
	base  int
}

// ParseRule parses a rule body or an axiom such as "f=|[3-f][3+f]" (the
// part after '=') into a Rule. Parsing is case-insensitive.
func ParseRule(s string) (Rule, error) {
	s = strings.ToLower(s)
	p := &ruleParser{input: s, src: s}
	return p.parse()
}

func (p *ruleParser) parse() (Rule, error) {
	var rule Rule

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t':
			p.pos++
		case isLetter(c):
			rule = append(rule, Letter(c))
			p.pos++
		case c == '|':
			rule = append(rule, Pen())
			p.pos++
		case c == '-':
			rule = append(rule, TurnLeft(1))
			p.pos++
		case c == '+':
			rule = append(rule, TurnRight(1))
			p.pos++
		case isDigit(c):
			in, err := p.parseTurn()
			if err != nil {
				return nil, err
			}
			rule = append(rule, in)
		case c == '[':
			in, err := p.parseNested()
			if err != nil {
				return nil, err
			}
			rule = append(rule, in)
		default:
			r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
			return nil, p.errorf(ErrUnexpectedChar, p.pos, "%q", r)
		}
	}

	return rule, nil
}

// parseTurn reads a digit run and the sign that must follow it.
func (p *ruleParser) parseTurn() (Instruction, error) {
	start := p.pos
	end := start + 1
	for end < len(p.src) && isDigit(p.src[end]) {
		end++
	}
	if end >= len(p.src) {
		return Instruction{}, p.errorf(ErrDanglingNumber, start, "(rule ends with number)")
	}

	n, err := strconv.Atoi(p.src[start:end])
	if err != nil {
		return Instruction{}, p.errorf(ErrBadNumber, start, "%q", p.src[start:end])
	}

	var in Instruction
	switch p.src[end] {
	case '-':
		in = TurnLeft(n)
	case '+':
		in = TurnRight(n)
	default:
		r, _ := utf8.DecodeRuneInString(p.src[end:])
		return Instruction{}, p.errorf(ErrDanglingNumber, end, "(bad character %q after number)", r)
	}
	p.pos = end + 1
	return in, nil
}

// parseNested finds the ']' matching the '[' at p.pos, counting nested
// pairs, and parses what lies between them.
func (p *ruleParser) parseNested() (Instruction, error) {
	open := p.pos
	depth := 0
	for end := open; end < len(p.src); end++ {
		switch p.src[end] {
		case '[':
			depth++
		case ']':
			depth--
			if depth > 0 {
				continue
			}
			sub := &ruleParser{
				input: p.input,
				src:   p.src[open+1 : end],
				base:  p.base + open + 1,
			}
			r, err := sub.parse()
			if err != nil {
				return Instruction{}, err
			}
			p.pos = end + 1
			return Nested(r), nil
		}
	}
	return Instruction{}, p.errorf(ErrUnterminatedBracket, open, "")
}

func (p *ruleParser) errorf(err error, pos int, format string, args ...any) *ParseError {
	return &ParseError{
		Input: p.input,
		Pos:   p.base + pos,
		Err:   err,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
