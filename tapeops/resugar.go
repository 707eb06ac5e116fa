package tapeops

import "fmt"

// Resugar expands coalesced ops back to single-step primitives.
func Resugar(ops []Op) []Raw {
	var ret []Raw
	for _, op := range ops {
		ret = appendRaws(ret, op)
	}
	return ret
}

func repeatRaw(ret []Raw, r Raw, n int) []Raw {
	for range n {
		ret = append(ret, r)
	}
	return ret
}

var zeroRaws = []Raw{RawLoopStart, RawSub, RawLoopEnd}

// SetRaws is the zeroing loop followed by the shorter walk to v, using wraparound above 128.
func SetRaws(v byte) []Raw {
	ret := append([]Raw(nil), zeroRaws...)
	if v > 128 {
		return repeatRaw(ret, RawSub, 256-int(v))
	}
	return repeatRaw(ret, RawAdd, int(v))
}

func appendRaws(ret []Raw, op Op) []Raw {
	switch op := op.(type) {
	case Add:
		return repeatRaw(ret, RawAdd, int(op))
	case Sub:
		return repeatRaw(ret, RawSub, int(op))
	case Left:
		return repeatRaw(ret, RawLeft, int(op))
	case Right:
		return repeatRaw(ret, RawRight, int(op))
	case Loop:
		ret = append(ret, RawLoopStart)
		for _, o := range op {
			ret = appendRaws(ret, o)
		}
		return append(ret, RawLoopEnd)
	case Zero:
		return append(ret, zeroRaws...)
	case Set:
		return append(ret, SetRaws(byte(op))...)
	case Input:
		return append(ret, RawInput)
	case Output:
		return append(ret, RawOutput)
	}
	panic(fmt.Errorf("unknown op: %T", op))
}

// RawCount is len(Resugar(ops)) without building the slice.
func RawCount(ops []Op) (n int) {
	for _, op := range ops {
		switch op := op.(type) {
		case Add:
			n += int(op)
		case Sub:
			n += int(op)
		case Left:
			n += int(op)
		case Right:
			n += int(op)
		case Loop:
			n += 2 + RawCount(op)
		case Zero:
			n += len(zeroRaws)
		case Set:
			v := int(op)
			n += len(zeroRaws) + min(v, 256-v)
		case Input, Output:
			n++
		default:
			panic(fmt.Errorf("unknown op: %T", op))
		}
	}
	return
}
