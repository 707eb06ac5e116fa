package tapeops

import "fmt"

type UnbalancedLoop int

const (
	OpenWithoutClose UnbalancedLoop = iota + 1
	TooManyClose
)

func (u UnbalancedLoop) Error() string {
	switch u {
	case OpenWithoutClose:
		return "unbalanced loop: open without close"
	case TooManyClose:
		return "unbalanced loop: too many close"
	}
	return fmt.Sprintf("unbalanced loop: %d", int(u))
}

// UnbalancedLoopError reports the offending bracket, as an index into the raw sequence.
type UnbalancedLoopError struct {
	Kind   UnbalancedLoop
	Offset int
}

func (e *UnbalancedLoopError) Error() string {
	return fmt.Sprintf("%s at %d", e.Kind.Error(), e.Offset)
}

func (e *UnbalancedLoopError) Unwrap() error {
	return e.Kind
}

// Desugar coalesces runs of primitives into counted ops and recognizes the zeroing loop.
func Desugar(raws []Raw) ([]Op, error) {
	d := &desugarer{
		raws: raws,
	}
	ops, err := d.seq(false)
	if err != nil {
		return nil, err
	}
	return ops, nil
}

type desugarer struct {
	raws []Raw
	pos  int
}

func (d *desugarer) run(kind Raw) int {
	n := 1
	d.pos++
	for d.pos < len(d.raws) && d.raws[d.pos] == kind {
		n++
		d.pos++
	}
	return n
}

func (d *desugarer) seq(inLoop bool) (ret []Op, err error) {
	for d.pos < len(d.raws) {
		switch r := d.raws[d.pos]; r {

		case RawAdd:
			ret = append(ret, Add(d.run(r)))
		case RawSub:
			ret = append(ret, Sub(d.run(r)))
		case RawLeft:
			ret = append(ret, Left(d.run(r)))
		case RawRight:
			ret = append(ret, Right(d.run(r)))

		case RawLoopStart:
			start := d.pos
			d.pos++
			body, err := d.seq(true)
			if err != nil {
				return nil, err
			}
			if d.pos >= len(d.raws) {
				return nil, &UnbalancedLoopError{
					Kind:   OpenWithoutClose,
					Offset: start,
				}
			}
			// consume ]
			d.pos++
			if isZeroingBody(body) {
				if len(ret) > 0 {
					if _, ok := ret[len(ret)-1].(Zero); ok {
						continue
					}
				}
				ret = append(ret, Zero{})
				continue
			}
			ret = append(ret, Loop(body))

		case RawLoopEnd:
			if !inLoop {
				return nil, &UnbalancedLoopError{
					Kind:   TooManyClose,
					Offset: d.pos,
				}
			}
			return ret, nil

		case RawInput:
			d.pos++
			ret = append(ret, Input{})
		case RawOutput:
			d.pos++
			ret = append(ret, Output{})

		default:
			panic(fmt.Errorf("bad raw primitive: %d", r))
		}
	}
	return ret, nil
}

func isZeroingBody(body []Op) bool {
	if len(body) != 1 {
		return false
	}
	switch op := body[0].(type) {
	case Add:
		return op == 1
	case Sub:
		return op == 1
	}
	return false
}
