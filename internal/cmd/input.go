// Package cmd implements the hidwire CLI commands.
package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput reads the named file, or stdin when path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// parseHex decodes loosely formatted hex text: whitespace, commas, and "0x"
// prefixes are tolerated, so pasted C arrays and descriptor dumps both work.
func parseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer("0x", "", "0X", "", ",", " ").Replace(s)
	clean = strings.Join(strings.Fields(clean), "")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("parse hex input: %w", err)
	}
	return b, nil
}

// inputBytes reads path and decodes it as hex text when hexIn is set.
func inputBytes(path string, hexIn bool) ([]byte, error) {
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if hexIn {
		return parseHex(string(raw))
	}
	return raw, nil
}
