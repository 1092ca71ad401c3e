package locmatch

import (
	"fmt"
	"testing"
)

const (
	benchFanout = 16
	benchDepth  = 4
)

var benchResultSink Result

// benchmarkPatterns builds a tree of literal patterns benchDepth deep with
// benchFanout siblings per level, plus a few wildcard patterns.
func benchmarkPatterns() []string {
	out := make([]string, 0, benchFanout*benchDepth+3)
	for i := 0; i < benchFanout; i++ {
		path := fmt.Sprintf("group%02d", i)
		for d := 1; d < benchDepth; d++ {
			out = append(out, path)
			path = fmt.Sprintf("%s/node%02d_%02d", path, d, i)
		}
		out = append(out, path)
	}
	out = append(out,
		"group00/*/deep/leaf",
		"*/node01_05",
		"group1*/probe",
	)
	return out
}

func benchmarkMatcher() *Matcher {
	m := New()
	for _, p := range benchmarkPatterns() {
		m.Add(p)
	}
	return m
}

func BenchmarkAdd(b *testing.B) {
	patterns := benchmarkPatterns()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := New()
		for _, p := range patterns {
			m.Add(p)
		}
	}
}

func BenchmarkMatchHit(b *testing.B) {
	m := benchmarkMatcher()
	path := "group07/node01_07/node02_07/node03_07"
	if m.Match(path) != Match {
		b.Fatalf("expected Match for %q", path)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResultSink = m.Match(path)
	}
}

func BenchmarkMatchMiss(b *testing.B) {
	m := benchmarkMatcher()
	path := "group07/node01_07/missing/node03_07"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResultSink = m.Match(path)
	}
}

func BenchmarkMatchWildcardFanout(b *testing.B) {
	m := New()
	for i := 0; i < benchFanout; i++ {
		m.Add(fmt.Sprintf("top/prefix%02d*/leaf", i))
	}
	path := "top/prefix09_suffix/leaf"
	if m.Match(path) != Match {
		b.Fatalf("expected Match for %q", path)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResultSink = m.Match(path)
	}
}

func BenchmarkWalkerDescent(b *testing.B) {
	m := benchmarkMatcher()
	segments := []string{"group07", "node01_07", "node02_07", "node03_07"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := m.Walk()
		for _, seg := range segments {
			w = w.Down(seg)
		}
		benchResultSink = w.Result()
	}
}
