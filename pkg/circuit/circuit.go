package circuit

import (
	"fmt"
	"strings"
)

// Circuit is a parsed boolean circuit: header metadata plus the gates in
// textual order. Textual order is the circuit's evaluation order, so a
// gate may only reference wires driven by earlier gates or by circuit
// inputs. A Circuit is immutable after construction.
type Circuit struct {
	Header Header
	Gates  []Gate
}

// Validate performs the consistency checks the parser deliberately leaves
// to the caller: every wire identifier referenced by a gate or implied by
// the header's port counts must lie in [0, NumWires), and the declared
// gate count must match the number of gates actually parsed.
func (c *Circuit) Validate() error {
	if got := uint32(len(c.Gates)); got != c.Header.NumGates {
		return fmt.Errorf("header declares %d gates, circuit has %d", c.Header.NumGates, got)
	}
	if in := c.Header.InputWires(); in > c.Header.NumWires {
		return fmt.Errorf("input ports span %d wires, circuit has only %d", in, c.Header.NumWires)
	}
	if out := c.Header.OutputWires(); out > c.Header.NumWires {
		return fmt.Errorf("output ports span %d wires, circuit has only %d", out, c.Header.NumWires)
	}
	for i, g := range c.Gates {
		for _, w := range Wires(g) {
			if w >= c.Header.NumWires {
				return fmt.Errorf("gate %d (%s) references wire %d, out of range [0, %d)", i, g.Kind(), w, c.Header.NumWires)
			}
		}
	}
	return nil
}

// Stats counts the gates of each kind. NonXOR is the number of gates that
// are not free under free-XOR garbling, the usual cost measure for a
// Bristol circuit.
type Stats struct {
	XOR    int
	AND    int
	INV    int
	NonXOR int
}

// Stats tallies the circuit's gates by kind
func (c *Circuit) Stats() Stats {
	var s Stats
	for _, g := range c.Gates {
		switch g.Kind() {
		case KindXOR:
			s.XOR++
		case KindAND:
			s.AND++
		case KindINV:
			s.INV++
		}
	}
	s.NonXOR = s.AND + s.INV
	return s
}

// String returns a one-line summary of the circuit's dimensions
func (c *Circuit) String() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("circuit: %d gates, %d wires", len(c.Gates), c.Header.NumWires))

	builder.WriteString(", inputs [")
	for i, w := range c.Header.NumInputWires {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(fmt.Sprintf("%d", w))
	}

	builder.WriteString("], outputs [")
	for i, w := range c.Header.NumOutputWires {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(fmt.Sprintf("%d", w))
	}
	builder.WriteString("]")

	return builder.String()
}
