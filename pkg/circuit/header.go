package circuit

// Header holds the dimensional metadata declared by the first three lines
// of a Bristol circuit description.
type Header struct {
	// NumGates is the declared gate count. The parser does not require it
	// to match the number of gate lines actually present; Validate does.
	NumGates uint32

	// NumWires is the total number of wires in the circuit's wire space.
	NumWires uint32

	// NumInputWires holds one wire count per input port, in declaration
	// order. Its length is the number of input ports.
	NumInputWires []uint32

	// NumOutputWires holds one wire count per output port, in declaration
	// order.
	NumOutputWires []uint32
}

// InputWires returns the total number of circuit input wires across all
// input ports.
func (h Header) InputWires() uint32 {
	var n uint32
	for _, w := range h.NumInputWires {
		n += w
	}
	return n
}

// OutputWires returns the total number of circuit output wires across all
// output ports.
func (h Header) OutputWires() uint32 {
	var n uint32
	for _, w := range h.NumOutputWires {
		n += w
	}
	return n
}
