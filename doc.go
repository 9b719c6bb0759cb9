/*
Package turing emulates single-tape Turing machines described by a small textual grammar.

A machine is described by a configuration file declaring the number of states, the
accepting states, an optional initial head offset and a transition table keyed by
(state, symbol read). An optional tape file provides the initial tape content. The
machine runs until no transition matches the current (state, symbol) pair; it then
reports the halting state and whether that state is accepting.

# Concept

The tape is unbounded in both directions and every cell starts at zero. The transition
table is built once and never changes while the machine runs. Halting is not an error:
it is the only way a run ends.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/turing"
	)

	func main() {
		m, err := turing.New("machine.txt", turing.WithTapeFile("tape.txt"))
		if err != nil {
			log.Fatal(err)
		}

		result := m.Run()
		fmt.Printf("ended in s%d (%s)\n", result.FinalState, result.Verdict())
	}

Machines that may not halt should be driven by pkg/runner, which imposes a step limit
and honors context cancellation from outside the engine.
*/
package turing
