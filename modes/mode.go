package modes

import (
	"fmt"
	"strings"
)

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment is used by tests. Config files and proxies from the environment are ignored.
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(str) {
	case "production", "prod":
		return ModeProduction, nil
	case "development", "dev":
		return ModeDevelopment, nil
	}
	return 0, fmt.Errorf("unknown mode: %s", str)
}
