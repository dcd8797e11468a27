package hid

import (
	"fmt"
	"strings"
)

// ItemType is the HID short item "type" field, the low 2 bits of a prefix.
// See HID 1.11 spec: Main=0, Global=1, Local=2, Reserved=3.
type ItemType uint8

const (
	ItemTypeMain     ItemType = 0
	ItemTypeGlobal   ItemType = 1
	ItemTypeLocal    ItemType = 2
	ItemTypeReserved ItemType = 3
)

// Prefix is the 6-bit code identifying a report item's role.
//
// A prefix technically consists of a 4-bit tag and a 2-bit type, but the HID
// spec lists them together, so this package treats the pair as one opaque
// code. The set below is closed: decoding a 6-bit value outside it is an
// error, with no tolerant fallback for vendor-extended streams.
type Prefix uint8

const (
	// Main items.
	PrefixInput         Prefix = 0b1000_00
	PrefixOutput        Prefix = 0b1001_00
	PrefixFeature       Prefix = 0b1011_00
	PrefixCollection    Prefix = 0b1010_00
	PrefixEndCollection Prefix = 0b1100_00

	// Global items.
	PrefixUsagePage    Prefix = 0b0000_01
	PrefixLogicalMin   Prefix = 0b0001_01
	PrefixLogicalMax   Prefix = 0b0010_01
	PrefixPhysicalMin  Prefix = 0b0011_01
	PrefixPhysicalMax  Prefix = 0b0100_01
	PrefixUnitExponent Prefix = 0b0101_01
	PrefixUnit         Prefix = 0b0110_01
	PrefixReportSize   Prefix = 0b0111_01
	PrefixReportID     Prefix = 0b1000_01
	PrefixReportCount  Prefix = 0b1001_01
	PrefixPush         Prefix = 0b1010_01
	PrefixPop          Prefix = 0b1011_01

	// Local items.
	PrefixUsage         Prefix = 0b0000_10
	PrefixUsageMin      Prefix = 0b0001_10
	PrefixUsageMax      Prefix = 0b0010_10
	PrefixDesignatorIdx Prefix = 0b0011_10
	PrefixDesignatorMin Prefix = 0b0100_10
	PrefixDesignatorMax Prefix = 0b0101_10
	PrefixStringIdx     Prefix = 0b0111_10
	PrefixStringMin     Prefix = 0b1000_10
	PrefixStringMax     Prefix = 0b1001_10
	PrefixDelimiter     Prefix = 0b1010_10
)

var prefixNames = map[Prefix]string{
	PrefixInput:         "Input",
	PrefixOutput:        "Output",
	PrefixFeature:       "Feature",
	PrefixCollection:    "Collection",
	PrefixEndCollection: "EndCollection",
	PrefixUsagePage:     "UsagePage",
	PrefixLogicalMin:    "LogicalMinimum",
	PrefixLogicalMax:    "LogicalMaximum",
	PrefixPhysicalMin:   "PhysicalMinimum",
	PrefixPhysicalMax:   "PhysicalMaximum",
	PrefixUnitExponent:  "UnitExponent",
	PrefixUnit:          "Unit",
	PrefixReportSize:    "ReportSize",
	PrefixReportID:      "ReportID",
	PrefixReportCount:   "ReportCount",
	PrefixPush:          "Push",
	PrefixPop:           "Pop",
	PrefixUsage:         "Usage",
	PrefixUsageMin:      "UsageMinimum",
	PrefixUsageMax:      "UsageMaximum",
	PrefixDesignatorIdx: "DesignatorIndex",
	PrefixDesignatorMin: "DesignatorMinimum",
	PrefixDesignatorMax: "DesignatorMaximum",
	PrefixStringIdx:     "StringIndex",
	PrefixStringMin:     "StringMinimum",
	PrefixStringMax:     "StringMaximum",
	PrefixDelimiter:     "Delimiter",
}

// prefixByName is the inverse of prefixNames, keyed by lowercased name.
// Built once at init; used by ParsePrefix.
var prefixByName = func() map[string]Prefix {
	m := make(map[string]Prefix, len(prefixNames))
	for p, n := range prefixNames {
		m[strings.ToLower(n)] = p
	}
	return m
}()

// Valid reports whether p is a member of the closed prefix set.
func (p Prefix) Valid() bool {
	_, ok := prefixNames[p]
	return ok
}

// Type returns the item type encoded in the low 2 bits of the prefix.
func (p Prefix) Type() ItemType {
	return ItemType(p & 0b11)
}

// Tag returns the 4-bit item tag encoded in the high bits of the prefix.
func (p Prefix) Tag() uint8 {
	return uint8(p >> 2)
}

// HasFlags reports whether p belongs to the flagged item category
// (Input/Output/Feature), whose 1- and 4-byte payloads carry a flag record
// instead of a plain integer.
func (p Prefix) HasFlags() bool {
	return p == PrefixInput || p == PrefixOutput || p == PrefixFeature
}

func (p Prefix) String() string {
	if n, ok := prefixNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Prefix(0x%02X)", uint8(p))
}

// ParsePrefix resolves a case-insensitive item name ("UsagePage", "input")
// to its Prefix. It returns false for names outside the closed set.
func ParsePrefix(name string) (Prefix, bool) {
	p, ok := prefixByName[strings.ToLower(name)]
	return p, ok
}
