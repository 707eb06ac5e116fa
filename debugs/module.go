package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tape/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
