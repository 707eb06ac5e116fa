package main

import (
	"context"

	"github.com/reusee/tape/logs"
	"github.com/reusee/tape/tapeops"
)

type RunSource func(ctx context.Context, path string) error

func (Module) RunSource(
	execute Execute,
	stdio Stdio,
	logger logs.Logger,
) RunSource {
	return func(ctx context.Context, path string) error {
		ops, err := compileFile(path)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "compiled",
			"path", path,
			"ops", len(ops),
			"raw", tapeops.RawCount(ops),
		)
		return run(ctx, execute, stdio, ops)
	}
}

type RunRaw func(ctx context.Context, path string) error

func (Module) RunRaw(
	execute Execute,
	stdio Stdio,
	logger logs.Logger,
) RunRaw {
	return func(ctx context.Context, path string) error {
		ops, err := parseFile(path)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "parsed",
			"path", path,
			"ops", len(ops),
		)
		return run(ctx, execute, stdio, ops)
	}
}

func run(ctx context.Context, execute Execute, stdio Stdio, ops []tapeops.Op) error {
	input, output, closeFn, err := stdio(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	_, err = execute(ctx, ops, input, output)
	return err
}
