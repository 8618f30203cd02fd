package bristol

import (
	"fmt"
	"os"

	"github.com/fyerfyer/bristol-circuit/pkg/circuit"
	"github.com/fyerfyer/bristol-circuit/pkg/utils"
)

// ParseFile reads a Bristol circuit description from disk and parses it
func ParseFile(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read circuit file: %w", err)
	}

	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log := utils.Logger()
	log.Debug().
		Str("file", path).
		Int("gates", len(c.Gates)).
		Uint32("wires", c.Header.NumWires).
		Int("inputPorts", len(c.Header.NumInputWires)).
		Int("outputPorts", len(c.Header.NumOutputWires)).
		Msg("parsed circuit")

	return c, nil
}
