package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/tape/logs"
	"github.com/reusee/tape/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
	Logs    logs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
