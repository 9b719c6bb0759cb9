package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Report renders a markdown description of a machine: summary and transition table.
func Report(name string, desc *domain.Description) string {
	var sb strings.Builder

	if name == "" {
		name = "machine"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)

	accepting := desc.Accepting.States()
	labels := make([]string, len(accepting))
	for i, st := range accepting {
		labels[i] = "s" + strconv.Itoa(st)
	}

	fmt.Fprintf(&sb, "- **States:** %d (s0 to s%d)\n", desc.States, desc.States-1)
	fmt.Fprintf(&sb, "- **Accepting:** %s\n", strings.Join(labels, ", "))
	if desc.HasOffset {
		fmt.Fprintf(&sb, "- **Tape offset:** %d\n", desc.Offset)
	}
	fmt.Fprintf(&sb, "- **Transitions:** %d\n\n", desc.Table.Len())

	if desc.Table.Len() == 0 {
		sb.WriteString("_No transitions: the machine halts immediately._\n")
		return sb.String()
	}

	sb.WriteString("## Transitions\n\n")
	sb.WriteString("| State | Read | Next | Write | Move |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, e := range desc.Table.Entries() {
		fmt.Fprintf(&sb, "| s%d | %d | s%d | %d | %s |\n", e.State, e.Symbol, e.Next, e.Write, e.Move)
	}
	return sb.String()
}
