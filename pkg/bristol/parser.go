// Package bristol parses the Bristol format, the line-oriented plaintext
// encoding of boolean circuits used as an interchange format by secure
// multi-party computation and garbled-circuit tooling.
//
// A description starts with a three-line header (gate and wire totals,
// then per-port wire counts for inputs and outputs) followed by one line
// per gate. Blank lines only separate the header from the gate list and
// carry no meaning. Parse is the entry point; it either returns a complete
// circuit or a typed error identifying the offending line.
package bristol

import (
	"strconv"
	"strings"

	"github.com/fyerfyer/bristol-circuit/pkg/circuit"
)

// headerLines is the fixed number of logical lines the header occupies
const headerLines = 3

// line is one non-empty logical line together with its position in the
// raw input, kept for error reporting.
type line struct {
	text string
	num  int // 1-based line number in the raw input
}

// splitLines breaks raw text into logical lines, dropping blank lines and
// stripping line terminators. Whitespace inside a line is preserved; field
// splitting happens later.
func splitLines(text string) []line {
	raw := strings.Split(text, "\n")
	lines := make([]line, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if len(l) == 0 {
			continue
		}
		lines = append(lines, line{text: l, num: i + 1})
	}
	return lines
}

// Parse parses a complete Bristol circuit description. It either returns
// a fully populated circuit or an error; a malformed description is never
// partially materialized. Gates appear in the result in textual order,
// which is the circuit's evaluation order.
func Parse(text string) (*circuit.Circuit, error) {
	lines := splitLines(text)
	if len(lines) < headerLines {
		return nil, &StructuralError{
			Expected: "a 3-line header",
			Found:    strconv.Itoa(len(lines)) + " non-empty line(s)",
		}
	}

	header, err := parseHeader(lines[:headerLines])
	if err != nil {
		return nil, err
	}

	gates := make([]circuit.Gate, 0, len(lines)-headerLines)
	for _, ln := range lines[headerLines:] {
		g, err := parseGate(ln)
		if err != nil {
			return nil, err
		}
		gates = append(gates, g)
	}

	return &circuit.Circuit{Header: header, Gates: gates}, nil
}

// parseHeader consumes the first three logical lines: the general line
// (gate and wire totals) and the input/output port-list lines. The header
// is located purely by position; no delimiter is involved.
func parseHeader(lines []line) (circuit.Header, error) {
	numGates, numWires, err := parseGeneralLine(lines[0])
	if err != nil {
		return circuit.Header{}, err
	}
	inputs, err := parsePortLine(lines[1], "input")
	if err != nil {
		return circuit.Header{}, err
	}
	outputs, err := parsePortLine(lines[2], "output")
	if err != nil {
		return circuit.Header{}, err
	}
	return circuit.Header{
		NumGates:       numGates,
		NumWires:       numWires,
		NumInputWires:  inputs,
		NumOutputWires: outputs,
	}, nil
}

// parseGeneralLine reads num_gates and num_wires from the first header
// line. Tokens beyond the first two are ignored.
func parseGeneralLine(ln line) (numGates, numWires uint32, err error) {
	fields := strings.Fields(ln.text)
	if len(fields) < 2 {
		return 0, 0, &StructuralError{
			Line:     ln.num,
			Expected: "gate and wire counts",
			Found:    strconv.Itoa(len(fields)) + " token(s)",
		}
	}
	if numGates, err = parseUint32(ln, "num_gates", fields[0]); err != nil {
		return 0, 0, err
	}
	if numWires, err = parseUint32(ln, "num_wires", fields[1]); err != nil {
		return 0, 0, err
	}
	return numGates, numWires, nil
}

// parsePortLine reads a port-list header line: a port count followed by
// exactly that many per-port wire counts, in positional order.
func parsePortLine(ln line, direction string) ([]uint32, error) {
	fields := strings.Fields(ln.text)
	if len(fields) == 0 {
		return nil, &StructuralError{
			Line:     ln.num,
			Expected: direction + " port counts",
			Found:    "an empty line",
		}
	}
	numPorts, err := parseUint32(ln, "num_"+direction+"_ports", fields[0])
	if err != nil {
		return nil, err
	}
	if uint32(len(fields)-1) != numPorts {
		return nil, &StructuralError{
			Line:     ln.num,
			Expected: strconv.FormatUint(uint64(numPorts), 10) + " " + direction + " port wire count(s)",
			Found:    strconv.Itoa(len(fields) - 1),
		}
	}
	wires := make([]uint32, 0, numPorts)
	for _, tok := range fields[1:] {
		w, err := parseUint32(ln, direction+"_port_wires", tok)
		if err != nil {
			return nil, err
		}
		wires = append(wires, w)
	}
	return wires, nil
}

// parseGate parses one gate line. The last token is the gate tag; the
// dispatch matches it exactly, with no case folding.
func parseGate(ln line) (circuit.Gate, error) {
	fields := strings.Fields(ln.text)
	if len(fields) == 0 {
		return nil, &StructuralError{
			Line:     ln.num,
			Expected: "a gate line",
			Found:    "a whitespace-only line",
		}
	}

	switch tag := fields[len(fields)-1]; tag {
	case "XOR":
		a, b, out, err := parseBinaryGate(ln, fields, tag)
		if err != nil {
			return nil, err
		}
		return circuit.XOR{InputA: a, InputB: b, Output: out}, nil
	case "AND":
		a, b, out, err := parseBinaryGate(ln, fields, tag)
		if err != nil {
			return nil, err
		}
		return circuit.AND{InputA: a, InputB: b, Output: out}, nil
	case "INV", "NOT":
		in, out, err := parseUnaryGate(ln, fields, tag)
		if err != nil {
			return nil, err
		}
		return circuit.INV{Input: in, Output: out}, nil
	case "EQ", "EQW", "MAND":
		return nil, &UnsupportedGateError{Line: ln.num, Tag: tag}
	default:
		return nil, &UnknownGateError{Line: ln.num, Tag: tag}
	}
}

// parseBinaryGate validates and extracts the wires of a 2-in/1-out gate
// line: [in_count out_count input_a input_b output tag].
func parseBinaryGate(ln line, fields []string, tag string) (a, b, out uint32, err error) {
	if err := checkArity(ln, fields, tag, "2"); err != nil {
		return 0, 0, 0, err
	}
	if len(fields) != 6 {
		return 0, 0, 0, &StructuralError{
			Line:     ln.num,
			Expected: "6 tokens on a " + tag + " gate line",
			Found:    strconv.Itoa(len(fields)),
		}
	}
	if a, err = parseUint32(ln, "input_a", fields[2]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = parseUint32(ln, "input_b", fields[3]); err != nil {
		return 0, 0, 0, err
	}
	if out, err = parseUint32(ln, "output", fields[4]); err != nil {
		return 0, 0, 0, err
	}
	return a, b, out, nil
}

// parseUnaryGate validates and extracts the wires of a 1-in/1-out gate
// line: [in_count out_count input output tag].
func parseUnaryGate(ln line, fields []string, tag string) (in, out uint32, err error) {
	if err := checkArity(ln, fields, tag, "1"); err != nil {
		return 0, 0, err
	}
	if len(fields) != 5 {
		return 0, 0, &StructuralError{
			Line:     ln.num,
			Expected: "5 tokens on a " + tag + " gate line",
			Found:    strconv.Itoa(len(fields)),
		}
	}
	if in, err = parseUint32(ln, "input", fields[2]); err != nil {
		return 0, 0, err
	}
	if out, err = parseUint32(ln, "output", fields[3]); err != nil {
		return 0, 0, err
	}
	return in, out, nil
}

// checkArity verifies the declared input/output counts against the fixed
// arity the tag requires. Every supported gate drives exactly one output.
// The declared counts are compared before the token count so that a line
// declaring the wrong arity reports the arity, not a token miscount.
func checkArity(ln line, fields []string, tag, wantInputs string) error {
	if len(fields) < 2 {
		return &StructuralError{
			Line:     ln.num,
			Expected: "input and output counts before the " + tag + " tag",
			Found:    strconv.Itoa(len(fields)-1) + " token(s)",
		}
	}
	if fields[0] != wantInputs {
		return &ArityMismatchError{Line: ln.num, Tag: tag, Expected: wantInputs, Found: fields[0]}
	}
	if fields[1] != "1" {
		return &ArityMismatchError{Line: ln.num, Tag: tag, Expected: "1", Found: fields[1]}
	}
	return nil
}

// parseUint32 parses a numeric token as a non-negative integer in 32-bit
// range.
func parseUint32(ln line, field, tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &MalformedNumberError{Line: ln.num, Field: field, Token: tok, Cause: err}
	}
	return uint32(v), nil
}
