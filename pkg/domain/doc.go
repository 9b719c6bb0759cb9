/*
Package domain contains the core domain models of the Turing machine emulator.

It defines the values shared by the parsers, the engine and every adapter. The package
is kept pure and free of I/O so that descriptions can be built, inspected and compared
without touching the filesystem.

# Key Entities

  - Direction: The head move applied by a transition (Right or Left).
  - Key / Transition: A rule mapping (state, symbol read) to (next state, symbol written, move).
  - Table: The transition table, immutable once a Description has been parsed.
  - AcceptingSet: The states in which halting is reported as acceptance.
  - Description: Everything a configuration file declares.
  - Result: The outcome of a halted run.
*/
package domain
