// Package validator lints a parsed machine description.
//
// These checks never block construction: a machine referencing undeclared states still
// runs. They exist to surface likely mistakes before a long run.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Issue is a single lint finding.
type Issue struct {
	Kind    string
	Message string
}

const (
	KindOutOfRange   = "out_of_range"
	KindUnreachable  = "unreachable"
	KindNoAccepting  = "no_accepting_path"
	KindNoTransition = "no_transitions"
)

// ValidateDescription crawls the transition graph from the initial state and reports
// out-of-range state references, unreachable states and missing paths to acceptance.
func ValidateDescription(desc *domain.Description) []Issue {
	var issues []Issue
	inRange := func(st int) bool { return st >= 0 && st < desc.States }

	for _, st := range desc.Accepting.States() {
		if !inRange(st) {
			issues = append(issues, Issue{KindOutOfRange, fmt.Sprintf("accepting state s%d is not declared (state_number is %d)", st, desc.States)})
		}
	}

	entries := desc.Table.Entries()
	if len(entries) == 0 {
		issues = append(issues, Issue{KindNoTransition, "no transitions: the machine halts immediately in s0"})
	}

	next := make(map[int][]int)
	for _, e := range entries {
		if !inRange(e.State) {
			issues = append(issues, Issue{KindOutOfRange, fmt.Sprintf("transition (%d,%d) starts from undeclared state s%d", e.State, e.Symbol, e.State)})
		}
		if !inRange(e.Next) {
			issues = append(issues, Issue{KindOutOfRange, fmt.Sprintf("transition (%d,%d) targets undeclared state s%d", e.State, e.Symbol, e.Next)})
		}
		next[e.State] = append(next[e.State], e.Next)
	}

	// Breadth-first crawl from the initial state.
	visited := map[int]bool{}
	queue := []int{domain.InitialState}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, target := range next[current] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	for st := 0; st < desc.States; st++ {
		if !visited[st] {
			issues = append(issues, Issue{KindUnreachable, fmt.Sprintf("state s%d is unreachable from s0", st)})
		}
	}

	reachable := false
	for st := range visited {
		if desc.Accepting.Contains(st) {
			reachable = true
			break
		}
	}
	if !reachable {
		issues = append(issues, Issue{KindNoAccepting, "no accepting state is reachable from s0: every run is rejected"})
	}

	return issues
}

// Err folds issues into a single error, or nil when there are none.
func Err(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, is := range issues {
		msgs[i] = is.Message
	}
	return fmt.Errorf("found %d issues:\n- %s", len(issues), strings.Join(msgs, "\n- "))
}
