package tietze_test

import (
	"testing"

	"github.com/katalvlaran/fundgroup/tietze"
)

// BenchmarkReplay_Slides replays a long chain of slides over eight originals.
func BenchmarkReplay_Slides(b *testing.B) {
	const (
		n0    = 8
		steps = 2000
	)
	t := make(tietze.Transcript, 0, 2*steps)
	for i := 0; i < steps; i++ {
		a := i%n0 + 1
		c := (i+3)%n0 + 1
		if i%2 == 1 {
			c = -c
		}
		t = append(t, a, c)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(t)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tietze.Replay(n0, t)
	}
}
