package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tape/cmds"
	"github.com/reusee/tape/logs"
	"github.com/reusee/tape/modes"
)

type action func(ctx context.Context, scope dscope.Scope) error

var todo action

var modeName = cmds.Var[string]("-mode")

func define(name string, desc string, fn func(path string) action) {
	cmds.Define(name, cmds.Func(func(path string) {
		todo = fn(path)
	}).Desc(desc))
}

func init() {
	define("run", "compile a variable program and execute it", func(path string) action {
		return func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(run RunSource) {
				err = run(ctx, path)
			})
			return err
		}
	})
	define("exec", "execute a raw program", func(path string) action {
		return func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(run RunRaw) {
				err = run(ctx, path)
			})
			return err
		}
	})
	define("compile", "print the raw program of a variable program", func(path string) action {
		return func(ctx context.Context, scope dscope.Scope) error {
			return printCompiled(path)
		}
	})
	define("optimize", "coalesce a raw program and print it back", func(path string) action {
		return func(ctx context.Context, scope dscope.Scope) error {
			return printOptimized(path)
		}
	})
	define("dump", "print the coalesced op tree of a program", func(path string) action {
		return func(ctx context.Context, scope dscope.Scope) error {
			return printDump(path)
		}
	})
	cmds.Define("repl", cmds.Func(func() {
		todo = func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(repl REPL) {
				err = repl(ctx)
			})
			return err
		}
	}).Desc("execute raw programs line by line on a shared tape"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if todo == nil {
		cmds.PrintUsage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	module := modes.ForProduction()
	if *modeName != "" {
		mode, err := modes.ParseMode(*modeName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if mode == modes.ModeDevelopment {
			module = modes.ForDevelopment()
		}
	}

	scope := dscope.New(
		new(Module),
		module,
	)

	var err error
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
	) {
		ctx, _ = newSpan(ctx, "")
		err = todo(ctx, scope)
		if err != nil {
			err = logs.WrapSpan(ctx, err)
			logger.ErrorContext(ctx, "failed", "error", err)
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
