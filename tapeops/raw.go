package tapeops

import "strings"

type Raw uint8

const (
	RawAdd Raw = iota + 1
	RawSub
	RawLeft
	RawRight
	RawLoopStart
	RawLoopEnd
	RawInput
	RawOutput
)

func RawFromChar(c rune) (Raw, bool) {
	switch c {
	case '+':
		return RawAdd, true
	case '-':
		return RawSub, true
	case '>':
		return RawRight, true
	case '<':
		return RawLeft, true
	case '[':
		return RawLoopStart, true
	case ']':
		return RawLoopEnd, true
	case ',':
		return RawInput, true
	case '.':
		return RawOutput, true
	}
	return 0, false
}

func (r Raw) Char() byte {
	switch r {
	case RawAdd:
		return '+'
	case RawSub:
		return '-'
	case RawLeft:
		return '<'
	case RawRight:
		return '>'
	case RawLoopStart:
		return '['
	case RawLoopEnd:
		return ']'
	case RawInput:
		return ','
	case RawOutput:
		return '.'
	}
	return '?'
}

func (r Raw) String() string {
	return string(r.Char())
}

// ParseRaw keeps the eight primitive characters and drops everything else as comments.
func ParseRaw(src string) []Raw {
	ret := make([]Raw, 0, len(src))
	for _, c := range src {
		if r, ok := RawFromChar(c); ok {
			ret = append(ret, r)
		}
	}
	return ret
}

func FormatRaw(raws []Raw) string {
	var b strings.Builder
	b.Grow(len(raws))
	for _, r := range raws {
		b.WriteByte(r.Char())
	}
	return b.String()
}
