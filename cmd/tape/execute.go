package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/reusee/e5"
	"github.com/reusee/tape/cmds"
	"github.com/reusee/tape/debugs"
	"github.com/reusee/tape/logs"
	"github.com/reusee/tape/tapeconfigs"
	"github.com/reusee/tape/tapeops"
	"github.com/reusee/tape/tapevm"
)

var tapFlag = cmds.Switch("-tap")

var ErrStepLimit = errors.New("step limit reached")

// Execute runs program until it ends, the step limit is hit or ctx is done.
type Execute func(
	ctx context.Context,
	program []tapeops.Op,
	input tapevm.LineSource,
	output io.Writer,
	options ...tapevm.Option,
) (*tapevm.VM, error)

func (Module) Execute(
	tapeSize tapeconfigs.TapeSize,
	maxSteps tapeconfigs.MaxSteps,
	logger logs.Logger,
	tap debugs.Tap,
) Execute {
	return func(
		ctx context.Context,
		program []tapeops.Op,
		input tapevm.LineSource,
		output io.Writer,
		options ...tapevm.Option,
	) (vm *tapevm.VM, err error) {
		vm = tapevm.NewVM(
			program,
			input,
			output,
			append([]tapevm.Option{
				tapevm.WithTapeSize(int(tapeSize)),
			}, options...)...,
		)

		defer func() {
			p := recover()
			if p == nil {
				return
			}
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = wrap.With(e5.Info("step %d", vm.Steps))(e)
		}()

		start := time.Now()
		for range vm.Run {
			if maxSteps > 0 && vm.Steps >= int(maxSteps) {
				err = wrap.With(e5.Info("max steps %d", maxSteps))(ErrStepLimit)
				break
			}
			if ctx.Err() != nil {
				err = wrap(ctx.Err())
				break
			}
		}
		logger.InfoContext(ctx, "executed",
			"steps", vm.Steps,
			"pointer", vm.Pointer,
			"duration", time.Since(start),
		)

		if *tapFlag {
			tap(ctx, "final state", debugs.VMGlobals(vm))
		}

		return vm, err
	}
}
