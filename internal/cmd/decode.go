package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hidwire/hidwire/internal/log"
	"github.com/hidwire/hidwire/usb/hid"
)

// Decode parses a report descriptor byte stream and prints its items.
type Decode struct {
	File string `arg:"" optional:"" help:"Input file (default: stdin)"`
	Hex  bool   `help:"Treat input as hex text instead of raw bytes"`
}

func (c *Decode) Run(logger *slog.Logger) error {
	data, err := inputBytes(c.File, c.Hex)
	if err != nil {
		return err
	}
	logger.Debug("decoding report descriptor", "bytes", len(data))

	items, err := hid.Decode(data)
	if err != nil {
		return err
	}

	dim, reset := "", ""
	if term.IsTerminal(int(os.Stdout.Fd())) {
		dim, reset = "\033[90m", "\033[0m"
	}

	off := 0
	for _, it := range items {
		wire, err := it.Bytes()
		if err != nil {
			return err
		}
		hexWire := fmt.Sprintf("% X", wire)
		logger.Log(context.Background(), log.LevelTrace, "item", "offset", off, "wire", hexWire)
		fmt.Printf("%s%04X  %-14s%s %s\n", dim, off, hexWire, reset, it)
		off += len(wire)
	}
	logger.Info("decoded report descriptor", "items", len(items), "bytes", len(data))
	return nil
}
