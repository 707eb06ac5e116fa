package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/tape/debugs"
	"github.com/reusee/tape/nets"
	"github.com/reusee/tape/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
	Nets    nets.Module
	Debugs  debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
