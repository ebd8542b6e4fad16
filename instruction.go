package lsys

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// InstructionType tells the evaluator what an Instruction does to the
// turtle.
type InstructionType int

// These are the instruction types a parsed rule is made of.
const (
	LetterInstruction InstructionType = iota
	PenInstruction
	TurnLeftInstruction
	TurnRightInstruction
	NestedInstruction
)

func (k InstructionType) String() string {
	switch k {
	case LetterInstruction:
		return "letter"
	case PenInstruction:
		return "pen"
	case TurnLeftInstruction:
		return "turn-left"
	case TurnRightInstruction:
		return "turn-right"
	case NestedInstruction:
		return "nested"
	default:
		return "InstructionType(" + strconv.Itoa(int(k)) + ")"
	}
}

// Instruction is a single element of a parsed rule. Only the fields that
// belong to Kind are set: Letter for letters, Count for turns and Rule for
// nested brackets.
type Instruction struct {
	Kind   InstructionType
	Letter byte
	Count  int
	Rule   Rule
}

// Letter returns a letter instruction for c.
func Letter(c byte) Instruction { return Instruction{Kind: LetterInstruction, Letter: c} }

// Pen returns a '|' instruction.
func Pen() Instruction { return Instruction{Kind: PenInstruction} }

// TurnLeft returns a turn of n angle steps to the left.
func TurnLeft(n int) Instruction { return Instruction{Kind: TurnLeftInstruction, Count: n} }

// TurnRight returns a turn of n angle steps to the right.
func TurnRight(n int) Instruction { return Instruction{Kind: TurnRightInstruction, Count: n} }

// Nested returns a bracketed sub-rule.
func Nested(r Rule) Instruction { return Instruction{Kind: NestedInstruction, Rule: r} }

// Rule is an ordered sequence of instructions, either a rule body or an
// axiom. An empty Rule is valid and does nothing.
type Rule []Instruction

// String returns the canonical text of r, which ParseRule turns back into
// an identical Rule.
func (r Rule) String() string {
	var sb strings.Builder
	r.write(&sb)
	return sb.String()
}

func (r Rule) write(sb *strings.Builder) {
	for _, in := range r {
		switch in.Kind {
		case LetterInstruction:
			sb.WriteByte(in.Letter)
		case PenInstruction:
			sb.WriteByte('|')
		case TurnLeftInstruction, TurnRightInstruction:
			if in.Count != 1 {
				sb.WriteString(strconv.Itoa(in.Count))
			}
			if in.Kind == TurnLeftInstruction {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('+')
			}
		case NestedInstruction:
			sb.WriteByte('[')
			in.Rule.write(sb)
			sb.WriteByte(']')
		default:
			fmt.Fprintf(sb, "<%s>", in.Kind)
		}
	}
}

// Rules maps a lowercase letter to the rule it expands to.
type Rules map[byte]Rule

// String returns one "x=..." line per letter, in alphabetical order.
func (rs Rules) String() string {
	letters := make([]byte, 0, len(rs))
	for c := range rs {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var sb strings.Builder
	for _, c := range letters {
		sb.WriteByte(c)
		sb.WriteByte('=')
		rs[c].write(&sb)
		sb.WriteByte('\n')
	}
	return sb.String()
}
