package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type state struct {
		Pointer int
		Cells   []int
		hidden  bool
	}

	dict := func(pairs ...starlark.Value) starlark.Value {
		d := starlark.NewDict(len(pairs) / 2)
		for i := 0; i < len(pairs); i += 2 {
			if err := d.SetKey(pairs[i], pairs[i+1]); err != nil {
				t.Fatal(err)
			}
		}
		return d
	}

	cases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("ab"), starlark.Bytes("ab")},
		{"string", "foo", starlark.String("foo")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"float", 0.5, starlark.Float(0.5)},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(2),
		})},
		{"map", map[string]int{"a": 1}, dict(
			starlark.String("a"), starlark.MakeInt(1),
		)},
		{"struct", state{Pointer: 3, Cells: []int{7}, hidden: true}, dict(
			starlark.String("Pointer"), starlark.MakeInt(3),
			starlark.String("Cells"), starlark.NewList([]starlark.Value{starlark.MakeInt(7)}),
		)},
		{"pointer", &state{Pointer: 1}, dict(
			starlark.String("Pointer"), starlark.MakeInt(1),
			starlark.String("Cells"), starlark.NewList(nil),
		)},
		{"nil pointer", (*state)(nil), starlark.None},
		{"bytes field", struct{ Tape []byte }{[]byte{7}}, dict(
			starlark.String("Tape"), starlark.Bytes("\a"),
		)},
		{"starlark value", starlark.String("x"), starlark.String("x")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.name, c.input)
			eq, err := starlark.Equal(got, c.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !eq {
				t.Fatalf("got %v, expected %v", got, c.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		got := toStarlarkValue("f", func(i int) int { return i })
		if _, ok := got.(starlark.Callable); !ok {
			t.Fatalf("got %T", got)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue("ch", make(chan int))
	})
}
