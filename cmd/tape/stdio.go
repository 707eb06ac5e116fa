package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/tape/cmds"
	"github.com/reusee/tape/nets"
	"github.com/reusee/tape/tapevm"
	"golang.org/x/term"
)

var connectAddr = cmds.Var[string]("-connect")

// Stdio returns the byte source and sink of a run. closeFn releases both.
type Stdio func(ctx context.Context) (
	input tapevm.LineSource,
	output io.Writer,
	closeFn func() error,
	err error,
)

func (Module) Stdio(
	connect nets.Connect,
) Stdio {
	return func(ctx context.Context) (tapevm.LineSource, io.Writer, func() error, error) {
		if *connectAddr != "" {
			conn, err := connect(ctx, *connectAddr)
			if err != nil {
				return nil, nil, nil, err
			}
			return tapevm.NewLineReader(conn), conn, conn.Close, nil
		}

		if term.IsTerminal(int(os.Stdin.Fd())) {
			rl, err := readline.NewEx(&readline.Config{
				Prompt: "",
			})
			if err != nil {
				return nil, nil, nil, wrap(err)
			}
			return readlineSource{rl}, os.Stdout, rl.Close, nil
		}

		return tapevm.NewLineReader(os.Stdin), os.Stdout, func() error {
			return nil
		}, nil
	}
}

type readlineSource struct {
	rl *readline.Instance
}

func (r readlineSource) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// ctrl-c ends input like ctrl-d
		return "", io.EOF
	}
	return line, err
}
