package tapevm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/tape/tapeops"
)

func run(t *testing.T, src string, input string) []byte {
	ops, err := tapeops.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	NewVM(ops, NewLineReader(strings.NewReader(input)), out).Exec()
	return out.Bytes()
}

const helloWorld = `
++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
`

func TestHelloWorld(t *testing.T) {
	out := run(t, helloWorld, "")
	if string(out) != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestArithmeticWraps(t *testing.T) {
	vm := NewVM([]tapeops.Op{tapeops.Sub(1)}, nil, nil)
	vm.Exec()
	if vm.Cell() != 255 {
		t.Fatalf("got %d", vm.Cell())
	}
	vm = NewVM([]tapeops.Op{tapeops.Add(300)}, nil, nil)
	vm.Exec()
	if vm.Cell() != 44 {
		t.Fatalf("got %d", vm.Cell())
	}
	vm = NewVM([]tapeops.Op{tapeops.Add(3), tapeops.Sub(259)}, nil, nil)
	vm.Exec()
	if vm.Cell() != 0 {
		t.Fatalf("got %d", vm.Cell())
	}
}

func TestPointerWraps(t *testing.T) {
	vm := NewVM([]tapeops.Op{tapeops.Left(1)}, nil, nil)
	vm.Exec()
	if vm.Pointer != DefaultTapeSize-1 {
		t.Fatalf("got %d", vm.Pointer)
	}

	vm = NewVM([]tapeops.Op{tapeops.Left(1), tapeops.Right(1)}, nil, nil)
	vm.Exec()
	if vm.Pointer != 0 {
		t.Fatalf("got %d", vm.Pointer)
	}

	vm = NewVM([]tapeops.Op{tapeops.Left(DefaultTapeSize*2 + 3)}, nil, nil)
	vm.Exec()
	if vm.Pointer != DefaultTapeSize-3 {
		t.Fatalf("got %d", vm.Pointer)
	}

	vm = NewVM([]tapeops.Op{tapeops.Right(12)}, nil, nil, WithTapeSize(10))
	vm.Exec()
	if vm.Pointer != 2 {
		t.Fatalf("got %d", vm.Pointer)
	}
}

func TestSet(t *testing.T) {
	for v := range 256 {
		vm := NewVM([]tapeops.Op{tapeops.Add(7), tapeops.Set(v)}, nil, nil)
		vm.Exec()
		if vm.Cell() != byte(v) {
			t.Fatalf("got %d, expected %d", vm.Cell(), v)
		}

		ops, err := tapeops.Desugar(tapeops.SetRaws(byte(v)))
		if err != nil {
			t.Fatal(err)
		}
		vm = NewVM(ops, nil, nil)
		vm.Exec()
		if vm.Cell() != byte(v) {
			t.Fatalf("got %d, expected %d", vm.Cell(), v)
		}
	}
}

func TestInputLines(t *testing.T) {
	out := run(t, ",.,.,.,.,.,.", "hi\n\n")
	if !bytes.Equal(out, []byte{'h', 'i', '\n', '\n', 0, 0}) {
		t.Fatalf("got %v", out)
	}

	// last line without terminator
	out = run(t, ",.,.,.", "x")
	if !bytes.Equal(out, []byte{'x', '\n', 0}) {
		t.Fatalf("got %v", out)
	}

	out = run(t, ",.,.,.", "a\r\n")
	if !bytes.Equal(out, []byte{'a', '\n', 0}) {
		t.Fatalf("got %v", out)
	}
}

func TestInputEndIsSticky(t *testing.T) {
	calls := 0
	src := LineSourceFunc(func() (string, error) {
		calls++
		if calls == 2 {
			return "late", nil
		}
		return "", io.EOF
	})
	ops, err := tapeops.Parse(",.,.,.")
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	NewVM(ops, src, out).Exec()
	if !bytes.Equal(out.Bytes(), []byte{0, 0, 0}) {
		t.Fatalf("got %v", out.Bytes())
	}
	if calls != 1 {
		t.Fatalf("got %d", calls)
	}
}

func TestEcho(t *testing.T) {
	out := run(t, ",[.,]", "abc\nd\n")
	if string(out) != "abc\nd\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRunInterrupts(t *testing.T) {
	ops, err := tapeops.Parse("+[]")
	if err != nil {
		t.Fatal(err)
	}
	vm := NewVM(ops, nil, nil)
	n := 0
	for intr := range vm.Run {
		if !intr.Loop {
			t.Fatal()
		}
		n++
		if n == 100 {
			break
		}
	}
	if n != 100 {
		t.Fatalf("got %d", n)
	}

	out := new(bytes.Buffer)
	ops, err = tapeops.Parse("+.+.+.")
	if err != nil {
		t.Fatal(err)
	}
	vm = NewVM(ops, nil, out)
	var got []byte
	for intr := range vm.Run {
		if intr.Output {
			got = append(got, intr.Byte)
		}
		if len(got) == 2 {
			break
		}
	}
	if !bytes.Equal(got, []byte{1, 2}) {
		t.Fatalf("got %v", got)
	}
	if !bytes.Equal(out.Bytes(), []byte{1, 2}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestOutputFailureIsFatal(t *testing.T) {
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if !strings.Contains(p.(error).Error(), "broken") {
			t.Fatalf("got %v", p)
		}
	}()
	NewVM([]tapeops.Op{tapeops.Output{}}, nil, failingWriter{}).Exec()
}

func TestInputFailureIsFatal(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	src := LineSourceFunc(func() (string, error) {
		return "", errors.New("broken")
	})
	NewVM([]tapeops.Op{tapeops.Input{}}, src, nil).Exec()
}

func TestState(t *testing.T) {
	ops, err := tapeops.Parse("+>++>>+++<")
	if err != nil {
		t.Fatal(err)
	}
	vm := NewVM(ops, nil, nil)
	vm.Exec()
	state := vm.State()
	if state.Pointer != 2 {
		t.Fatalf("got %d", state.Pointer)
	}
	if !bytes.Equal(state.Cells, []byte{1, 2, 0, 3}) {
		t.Fatalf("got %v", state.Cells)
	}
	if state.Steps != 6 {
		t.Fatalf("got %d", state.Steps)
	}
}

func TestEmptyLoopCountsSteps(t *testing.T) {
	ops, err := tapeops.Parse("+[]")
	if err != nil {
		t.Fatal(err)
	}
	vm := NewVM(ops, nil, nil)
	for range vm.Run {
		if vm.Steps >= 100 {
			break
		}
	}
	if vm.Steps != 100 {
		t.Fatalf("got %d", vm.Steps)
	}
}

func TestWithTape(t *testing.T) {
	first := NewVM([]tapeops.Op{tapeops.Add(3), tapeops.Right(1)}, nil, nil, WithTapeSize(4))
	first.Exec()
	second := NewVM(
		[]tapeops.Op{tapeops.Add(1), tapeops.Left(1), tapeops.Add(1)},
		nil, nil,
		WithTapeSize(100),
		WithTape(first.Tape, first.Pointer),
	)
	second.Exec()
	if len(second.Tape) != 4 {
		t.Fatalf("got %d", len(second.Tape))
	}
	if !bytes.Equal(second.Tape, []byte{4, 1, 0, 0}) {
		t.Fatalf("got %v", second.Tape)
	}
	if second.Pointer != 0 {
		t.Fatalf("got %d", second.Pointer)
	}
}

func TestLineReaderTerminators(t *testing.T) {
	for input, expected := range map[string][]string{
		"a\r\nb\n": {"a", "b"},
		"a\r\nb\r": {"a", "b"},
		"a\r":      {"a"},
		"a":        {"a"},
		"\n\r\n":   {"", ""},
		"":         nil,
	} {
		r := NewLineReader(strings.NewReader(input))
		var lines []string
		for {
			line, err := r.ReadLine()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				t.Fatal(err)
			}
			lines = append(lines, line)
		}
		if strings.Join(lines, "|") != strings.Join(expected, "|") || len(lines) != len(expected) {
			t.Fatalf("%q: got %q", input, lines)
		}
	}
	if out := run(t, ",.,.,.", "a\r"); string(out) != "a\n\x00" {
		t.Fatalf("got %q", out)
	}
}

func TestLoopInterruptsAreNotShared(t *testing.T) {
	ops := []tapeops.Op{
		tapeops.Add(2),
		tapeops.Loop{tapeops.Sub(1), tapeops.Right(1), tapeops.Left(1)},
	}
	loops := 0
	for intr := range NewVM(ops, nil, nil).Run {
		if !intr.Loop {
			t.Fatal("mutated interrupt observed")
		}
		loops++
		intr.Loop = false
	}
	if loops != 2 {
		t.Fatalf("got %d", loops)
	}
}
