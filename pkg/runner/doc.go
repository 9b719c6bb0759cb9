/*
Package runner drives a machine from the outside with a step limit and cancellation.

The engine itself loops until the machine halts and has no notion of time or budget.
The Runner wraps it as an opaque ports.Stepper, advancing it one transition at a time,
checking its limits between steps, and optionally recording the final outcome in a
ports.ResultStore.

# Usage

	m, err := turing.New("machine.txt")
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(
		runner.WithMaxSteps(1_000_000),
		runner.WithStore(memory.NewStore()),
	)

	result, err := r.Run(ctx, m)
	if errors.Is(err, runner.ErrStepLimit) {
		log.Println("machine did not halt in time")
	}
*/
package runner
