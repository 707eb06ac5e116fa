package tapeops

import (
	"github.com/davecgh/go-spew/spew"
)

func Format(ops []Op) string {
	return FormatRaw(Resugar(ops))
}

func Parse(src string) ([]Op, error) {
	return Desugar(ParseRaw(src))
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump renders the instruction tree with types, for diagnostics.
func Dump(ops []Op) string {
	return dumpConfig.Sdump(ops)
}
