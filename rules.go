package lsys

import (
	"errors"
	"strings"
)

// ParseRules parses a block of "x=rule" definitions, one per line. Blank
// lines are skipped and a later definition of a letter replaces an earlier
// one.
func ParseRules(text string) (Rules, error) {
	rules := make(Rules)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := rules.Add(line); err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
	}
	return rules, nil
}

// Add parses a single "x=rule" definition and stores it in rs.
func (rs Rules) Add(def string) error {
	def = strings.ToLower(def)
	parts := strings.Split(def, "=")
	if len(parts) != 2 {
		return &ParseError{Input: def, Pos: -1, Err: ErrMalformedRule, Msg: "(want exactly one '=')"}
	}
	lhs := strings.TrimSpace(parts[0])
	if len(lhs) != 1 || !isLetter(lhs[0]) {
		return &ParseError{Input: def, Pos: -1, Err: ErrMalformedRule, Msg: "(left side must be a single letter)"}
	}

	rule, err := ParseRule(parts[1])
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			// Report positions against the whole definition.
			pe.Input = def
			pe.Pos += len(parts[0]) + 1
		}
		return err
	}
	rs[lhs[0]] = rule
	return nil
}
