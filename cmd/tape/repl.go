package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/tape/logs"
	"github.com/reusee/tape/tapeops"
	"github.com/reusee/tape/tapevm"
)

// REPL executes each input line as a raw program. All lines share one tape.
type REPL func(ctx context.Context) error

func (Module) REPL(
	execute Execute,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".tape_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "tape> ",
			HistoryFile: historyFile,
		})
		if err != nil {
			return wrap(err)
		}
		defer rl.Close()

		var tape []byte
		var pointer int
		for ctx.Err() == nil {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return wrap(err)
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			ops, err := tapeops.Parse(line)
			if err != nil {
				fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
				continue
			}
			vm, err := execute(ctx, ops, nil, rl.Stdout(), tapevm.WithTape(tape, pointer))
			if err != nil {
				fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			}
			tape, pointer = vm.Tape, vm.Pointer
			fmt.Fprintf(rl.Stderr(), "[%d] = %d\n", vm.Pointer, vm.Cell())
			logger.DebugContext(ctx, "repl", "state", vm.State())
		}
		return wrap(ctx.Err())
	}
}
