/*
Package ports defines the driven ports (interfaces) of the emulator.

These interfaces decouple the runner and the adapters from concrete implementations,
allowing run records to live in memory, in Redis, or anywhere else.

# Key Interfaces

  - Stepper: A machine that can be advanced one transition at a time.
  - ResultStore: Persists the final outcome of finished runs.
*/
package ports
