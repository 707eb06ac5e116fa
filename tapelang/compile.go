package tapelang

import (
	"io"

	"github.com/reusee/tape/tapeops"
)

func Compile(name string, source io.Reader) ([]tapeops.Op, error) {
	stmts, _, err := Parse(name, source)
	if err != nil {
		return nil, err
	}
	return Generate(stmts), nil
}
