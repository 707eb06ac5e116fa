package tapevm

import (
	"testing"

	"github.com/reusee/tape/tapeops"
)

func BenchmarkVM_Countdown(b *testing.B) {
	ops, err := tapeops.Parse("-[>-[>-<-]<-]")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		NewVM(ops, nil, nil).Exec()
	}
}

func BenchmarkVM_HelloWorld(b *testing.B) {
	ops, err := tapeops.Parse(helloWorld)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		NewVM(ops, nil, nil).Exec()
	}
}
