package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/fyerfyer/bristol-circuit/pkg/bristol"
	"github.com/fyerfyer/bristol-circuit/pkg/utils"
)

func main() {
	// Parse command-line arguments
	circuitFile := flag.String("circuit", "", "Circuit file in Bristol format")
	validate := flag.Bool("validate", false, "Check wire ranges and gate count against the header")
	verbose := flag.Bool("verbose", false, "Verbose output")
	logFile := flag.String("log", "", "Log file (default: stdout)")
	flag.Parse()

	// Configure logger
	if *verbose {
		utils.SetLevel(zerolog.DebugLevel)
	} else {
		utils.SetLevel(zerolog.InfoLevel)
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Printf("Error creating log file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		utils.SetOutput(file)
	}

	// Check required arguments
	if *circuitFile == "" {
		fmt.Println("Error: Circuit file is required")
		flag.Usage()
		os.Exit(1)
	}

	log := utils.Logger()

	// Parse circuit file
	log.Info().Str("file", *circuitFile).Msg("parsing circuit")
	c, err := bristol.ParseFile(*circuitFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse circuit")
		os.Exit(1)
	}

	if *validate {
		if err := c.Validate(); err != nil {
			log.Error().Err(err).Msg("circuit failed validation")
			os.Exit(1)
		}
		log.Info().Msg("circuit is consistent")
	}

	// Print summary
	stats := c.Stats()
	fmt.Printf("%s:\n", *circuitFile)
	fmt.Printf(" - inputs : %v\n", c.Header.NumInputWires)
	fmt.Printf(" - outputs: %v\n", c.Header.NumOutputWires)
	fmt.Printf(" - gates  : %v\n", len(c.Gates))
	fmt.Printf("   - XOR  : %v\n", stats.XOR)
	fmt.Printf("   - AND  : %v\n", stats.AND)
	fmt.Printf("   - INV  : %v\n", stats.INV)
	fmt.Printf("   - #!xor: %v\n", stats.NonXOR)
	fmt.Printf(" - wires  : %v\n", c.Header.NumWires)
}
