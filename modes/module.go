package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleFor provides a fixed Mode outside tests.
type ModuleFor struct {
	dscope.Module
	mode Mode
}

func ForProduction() ModuleFor {
	return ModuleFor{
		mode: ModeProduction,
	}
}

// ForDevelopment runs a binary the way tests run: no config discovery, no journal, no proxy.
func ForDevelopment() ModuleFor {
	return ModuleFor{
		mode: ModeDevelopment,
	}
}

func (ModuleFor) T() *testing.T {
	return nil
}

func (m ModuleFor) Mode() Mode {
	return m.mode
}
