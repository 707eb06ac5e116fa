package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/e5"
	"github.com/reusee/tape/tapelang"
	"github.com/reusee/tape/tapeops"
)

// variable programs use this extension, everything else is raw
const sourceExt = ".tl"

func compileFile(path string) ([]tapeops.Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	ops, err := tapelang.Compile(path, f)
	if err != nil {
		return nil, wrap.With(e5.Info("compile %s", path))(err)
	}
	return ops, nil
}

func parseFile(path string) ([]tapeops.Op, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	ops, err := tapeops.Parse(string(content))
	if err != nil {
		return nil, wrap.With(e5.Info("parse %s", path))(err)
	}
	return ops, nil
}

func loadFile(path string) ([]tapeops.Op, error) {
	if filepath.Ext(path) == sourceExt {
		return compileFile(path)
	}
	return parseFile(path)
}

func printCompiled(path string) error {
	ops, err := compileFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Println(tapeops.Format(ops))
	return err
}

func printOptimized(path string) error {
	ops, err := parseFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Println(tapeops.Format(ops))
	return err
}

func printDump(path string) error {
	ops, err := loadFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Print(tapeops.Dump(ops))
	return err
}
