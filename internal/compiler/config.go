package compiler

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Directive keywords.
const (
	DirectiveStateNumber     = "state_number"
	DirectiveAcceptingStates = "accepting_states"
	DirectiveTapeOffset      = "tape_offset"
	DirectiveTransitions     = "transitions"
)

// configParser accumulates a Description one line at a time.
type configParser struct {
	desc *domain.Description

	seenStates      bool
	seenAccepting   bool
	seenTransitions bool
}

// ParseConfig reads a machine description.
// Errors are *domain.ConfigFormatError, *domain.MissingDirectiveError or domain.ErrEmptyInput.
func ParseConfig(r io.Reader) (*domain.Description, error) {
	p := &configParser{
		desc: &domain.Description{
			Accepting: domain.NewAcceptingSet(),
			Table:     domain.NewTable(),
		},
	}

	scanner := newLineScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := p.parseLine(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if lineNo == 0 {
		return nil, domain.ErrEmptyInput
	}

	switch {
	case !p.seenStates:
		return nil, &domain.MissingDirectiveError{Directive: DirectiveStateNumber}
	case !p.seenAccepting:
		return nil, &domain.MissingDirectiveError{Directive: DirectiveAcceptingStates}
	case !p.seenTransitions:
		return nil, &domain.MissingDirectiveError{Directive: DirectiveTransitions}
	}
	return p.desc, nil
}

func (p *configParser) parseLine(lineNo int, line string) error {
	fail := func(format string, args ...any) error {
		return &domain.ConfigFormatError{Line: lineNo, Text: line, Reason: fmt.Sprintf(format, args...)}
	}

	if p.seenTransitions {
		key, tr, reason := parseTransition(line)
		if reason != "" {
			return fail("%s", reason)
		}
		p.desc.Table.Register(key, tr)
		return nil
	}

	keyword, payload, ok := strings.Cut(line, ":")
	if !ok {
		return fail("wrong number of tokens")
	}

	if keyword == DirectiveTransitions {
		if payload != "" {
			return fail("wrong number of tokens")
		}
		if !p.seenStates {
			return fail("transitions declared before %s", DirectiveStateNumber)
		}
		p.seenTransitions = true
		return nil
	}

	value, reason := statement(payload)
	if reason != "" {
		return fail("%s", reason)
	}

	switch keyword {
	case DirectiveStateNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fail("not an integer: %q", value)
		}
		if n <= 0 {
			return fail("state number must be positive")
		}
		p.desc.States = n
		p.seenStates = true

	case DirectiveAcceptingStates:
		for _, tok := range strings.Split(value, ",") {
			st, err := strconv.Atoi(tok)
			if err != nil {
				return fail("not an integer: %q", tok)
			}
			p.desc.Accepting.Add(st)
		}
		p.seenAccepting = true

	case DirectiveTapeOffset:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fail("not an integer: %q", value)
		}
		if n < 0 {
			return fail("tape offset must not be negative")
		}
		if n == math.MaxInt {
			return fail("tape offset too large")
		}
		p.desc.Offset = n
		p.desc.HasOffset = true

	default:
		return fail("unknown directive %q", keyword)
	}
	return nil
}

// newLineScanner reads lines of any length.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return scanner
}

// statement strips the ';' terminator from a directive payload.
// A non-empty reason means the payload is malformed.
func statement(payload string) (string, string) {
	value, ok := strings.CutSuffix(payload, ";")
	if !ok {
		return "", "missing ';' terminator"
	}
	if strings.ContainsAny(value, ":;") {
		return "", "wrong number of tokens"
	}
	return value, ""
}

// parseTransition parses "(<state>,<read>):(<next>,<write>,<RIGHT|LEFT>);".
func parseTransition(line string) (domain.Key, domain.Transition, string) {
	var (
		key domain.Key
		tr  domain.Transition
	)

	from, to, ok := strings.Cut(line, ":")
	if !ok {
		return key, tr, "wrong number of tokens"
	}
	to, reason := statement(to)
	if reason != "" {
		return key, tr, reason
	}

	lhs, ok := parenthesized(from)
	if !ok || len(lhs) != 2 {
		return key, tr, "invalid transition start"
	}
	rhs, ok := parenthesized(to)
	if !ok || len(rhs) != 3 {
		return key, tr, "invalid transition end"
	}

	ints := make([]int, 0, 4)
	for _, tok := range []string{lhs[0], lhs[1], rhs[0], rhs[1]} {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return key, tr, fmt.Sprintf("not an integer: %q", tok)
		}
		ints = append(ints, n)
	}

	move, err := domain.ParseDirection(rhs[2])
	if err != nil {
		return key, tr, err.Error()
	}

	key = domain.Key{State: ints[0], Symbol: ints[1]}
	tr = domain.Transition{Next: ints[2], Write: ints[3], Move: move}
	return key, tr, ""
}

// parenthesized splits "(a,b,...)" on commas.
func parenthesized(s string) ([]string, bool) {
	inner, ok := strings.CutPrefix(s, "(")
	if !ok {
		return nil, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return nil, false
	}
	return strings.Split(inner, ","), true
}
