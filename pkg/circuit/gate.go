package circuit

import "fmt"

// GateKind identifies the logic operation a gate performs
type GateKind int

const (
	KindXOR GateKind = iota
	KindAND
	KindINV
)

// String returns a string representation of the gate kind
func (k GateKind) String() string {
	switch k {
	case KindXOR:
		return "XOR"
	case KindAND:
		return "AND"
	case KindINV:
		return "INV"
	default:
		return "UNKNOWN"
	}
}

// Gate is one logic gate of a circuit. The set of variants is closed:
// XOR, AND and INV are the only implementations, and Kind reports which
// variant a value is. Gates are immutable once constructed and owned
// exclusively by the Circuit that holds them.
type Gate interface {
	Kind() GateKind
	fmt.Stringer

	isGate()
}

// XOR is a two-input exclusive-or gate
type XOR struct {
	InputA uint32
	InputB uint32
	Output uint32
}

// AND is a two-input and gate
type AND struct {
	InputA uint32
	InputB uint32
	Output uint32
}

// INV is a single-input inverter. Bristol files spell it either INV or
// NOT; both map to this variant.
type INV struct {
	Input  uint32
	Output uint32
}

func (XOR) Kind() GateKind { return KindXOR }
func (AND) Kind() GateKind { return KindAND }
func (INV) Kind() GateKind { return KindINV }

func (XOR) isGate() {}
func (AND) isGate() {}
func (INV) isGate() {}

// String returns a string representation of the gate
func (g XOR) String() string {
	return fmt.Sprintf("XOR(%d, %d) -> %d", g.InputA, g.InputB, g.Output)
}

// String returns a string representation of the gate
func (g AND) String() string {
	return fmt.Sprintf("AND(%d, %d) -> %d", g.InputA, g.InputB, g.Output)
}

// String returns a string representation of the gate
func (g INV) String() string {
	return fmt.Sprintf("INV(%d) -> %d", g.Input, g.Output)
}

// Wires returns the wire identifiers referenced by a gate, inputs first,
// output last.
func Wires(g Gate) []uint32 {
	switch g := g.(type) {
	case XOR:
		return []uint32{g.InputA, g.InputB, g.Output}
	case AND:
		return []uint32{g.InputA, g.InputB, g.Output}
	case INV:
		return []uint32{g.Input, g.Output}
	default:
		return nil
	}
}
