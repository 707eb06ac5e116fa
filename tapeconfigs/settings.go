package tapeconfigs

import (
	"github.com/reusee/tape/cmds"
	"github.com/reusee/tape/configs"
	"github.com/reusee/tape/tapevm"
	"github.com/reusee/tape/vars"
)

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (TapeSize) ConfigExpr() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size")

// TapeSize prefers the flag, then config files, then the default.
func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		tapevm.DefaultTapeSize,
	))
}

type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps")

// MaxSteps is the smaller of the flag and the config. Zero means no limit.
func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	flag := *maxStepsFlag
	config := configs.First[int](loader, "max_steps")
	if flag > 0 && config > 0 {
		return MaxSteps(min(flag, config))
	}
	return MaxSteps(vars.FirstNonZero(flag, config))
}
