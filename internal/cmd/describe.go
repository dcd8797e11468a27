package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hidwire/hidwire/usb"
)

// Describe parses a 9-byte HID class descriptor and prints its fields.
type Describe struct {
	File string `arg:"" optional:"" help:"Input file (default: stdin)"`
	Hex  bool   `help:"Treat input as hex text instead of raw bytes"`
}

func (c *Describe) Run(logger *slog.Logger) error {
	data, err := inputBytes(c.File, c.Hex)
	if err != nil {
		return err
	}

	desc, err := usb.ParseHIDDescriptor(data)
	if err != nil {
		return err
	}

	fmt.Printf("bLength             %d\n", usb.HIDDescLen)
	fmt.Printf("bDescriptorType     0x%02X\n", usb.HIDDescType)
	fmt.Printf("bcdHID              %s\n", desc.Version())
	fmt.Printf("bCountryCode        %d\n", desc.BCountryCode)
	fmt.Printf("bNumDescriptors     %d\n", desc.BNumDescriptors)
	fmt.Printf("bRepDescriptorType  0x%02X\n", desc.BRepDescriptorType)
	fmt.Printf("wDescriptorLength   %d\n", desc.WDescriptorLength)

	logger.Debug("parsed HID descriptor", "reportLength", desc.WDescriptorLength)
	return nil
}
