package turing_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/turing"
)

// ExampleLoad runs a machine that writes three 1s to the right and stops.
func ExampleLoad() {
	config := strings.NewReader(`state_number:4;
accepting_states:3;
transitions:
(0,0):(1,1,RIGHT);
(1,0):(2,1,RIGHT);
(2,0):(3,1,RIGHT);
`)

	m, err := turing.Load(config, nil)
	if err != nil {
		log.Fatal(err)
	}

	result := m.Run()
	fmt.Printf("The Turing machine ended in state: s%d\n", result.FinalState)
	fmt.Printf("The input is %s\n", result.Verdict())
	// Output:
	// The Turing machine ended in state: s3
	// The input is accepted
}
