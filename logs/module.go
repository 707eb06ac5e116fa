package logs

import (
	"github.com/reusee/dscope"
)

// Module provides Logger. It needs a modes.Mode from the scope.
type Module struct {
	dscope.Module
}
