package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hidwire/hidwire/usb"
	"github.com/hidwire/hidwire/usb/hid"
)

// Build compiles a YAML item list into report descriptor bytes and the HID
// class descriptor advertising them.
type Build struct {
	File string `arg:"" help:"YAML report description"`
	Out  string `help:"Write the raw report descriptor bytes to this file"`
}

// reportSpec is the YAML document root.
type reportSpec struct {
	Items []itemSpec `yaml:"items"`
}

// itemSpec is one report item. Exactly one payload form may be given:
// value (unsigned, minimal width), signed, bytes (explicit width), flags
// (Input/Output/Feature record), raw (pre-encoded hex passed through), or
// none for payload-less items like EndCollection.
type itemSpec struct {
	Prefix string    `yaml:"prefix"`
	Value  *uint32   `yaml:"value"`
	Signed *int32    `yaml:"signed"`
	Bytes  []uint8   `yaml:"bytes"`
	Flags  *flagSpec `yaml:"flags"`
	Raw    string    `yaml:"raw"`
}

// flagSpec mirrors hid.FlagConfig with optional fields, so omitted flags
// keep the HID defaults (variable, linear, preferred).
type flagSpec struct {
	Constant      *bool `yaml:"constant"`
	Variable      *bool `yaml:"variable"`
	Relative      *bool `yaml:"relative"`
	Wrap          *bool `yaml:"wrap"`
	Linear        *bool `yaml:"linear"`
	Preferred     *bool `yaml:"preferred"`
	Null          *bool `yaml:"null"`
	Volatile      *bool `yaml:"volatile"`
	BufferedBytes *bool `yaml:"buffered_bytes"`
}

func (s *flagSpec) config() hid.FlagConfig {
	cfg := hid.DefaultFlagConfig()
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&cfg.Constant, s.Constant)
	apply(&cfg.Variable, s.Variable)
	apply(&cfg.Relative, s.Relative)
	apply(&cfg.Wrap, s.Wrap)
	apply(&cfg.Linear, s.Linear)
	apply(&cfg.Preferred, s.Preferred)
	apply(&cfg.Null, s.Null)
	apply(&cfg.Volatile, s.Volatile)
	apply(&cfg.BufferedBytes, s.BufferedBytes)
	return cfg
}

func (c *Build) Run(logger *slog.Logger) error {
	raw, err := readInput(c.File)
	if err != nil {
		return err
	}
	var spec reportSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return fmt.Errorf("parse %s: %w", c.File, err)
	}
	if len(spec.Items) == 0 {
		return fmt.Errorf("%s: no items", c.File)
	}

	var collection usb.DescriptorCollection
	builder := hid.NewReportBuilder(&collection)
	for i, item := range spec.Items {
		if err := addItem(builder, item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	desc, err := builder.Emit()
	if err != nil {
		return err
	}
	report := collection.Descriptors(usb.ReportDescType)[0]

	logger.Info("built report descriptor", "items", len(spec.Items), "bytes", len(report))
	fmt.Printf("report descriptor  % X\n", []byte(report))
	fmt.Printf("hid descriptor     % X\n", desc)

	if c.Out != "" {
		if err := os.WriteFile(c.Out, report, 0o644); err != nil {
			return err
		}
		logger.Info("wrote report descriptor", "file", c.Out)
	}
	return nil
}

func addItem(builder *hid.ReportBuilder, item itemSpec) error {
	if item.Raw != "" {
		if item.Prefix != "" {
			return fmt.Errorf("raw entries take no prefix")
		}
		b, err := parseHex(item.Raw)
		if err != nil {
			return err
		}
		builder.AddReportRaw(b)
		return nil
	}

	prefix, ok := hid.ParsePrefix(item.Prefix)
	if !ok {
		return fmt.Errorf("unknown item prefix %q", item.Prefix)
	}
	switch {
	case item.Flags != nil:
		return builder.AddFlagItem(prefix, item.Flags.config())
	case item.Signed != nil:
		return builder.AddReportSigned(prefix, *item.Signed)
	case item.Value != nil:
		return builder.AddReportValue(prefix, *item.Value)
	case len(item.Bytes) > 0:
		return builder.AddReportItem(prefix, item.Bytes...)
	default:
		return builder.AddReportItem(prefix)
	}
}
