package orbit_test

import (
	"testing"

	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/orbit"
)

// BenchmarkGenerate_F4_Linear measures the reference linear-scan index on the
// 1152 flags of F4. Each lookup is O(N), so a run is O(N²·D²).
func BenchmarkGenerate_F4_Linear(b *testing.B) {
	start, mirrors, _ := seed(b, "F4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = orbit.Generate(start, mirrors, orbit.WithIndex(orbit.NewLinearIndex(flag.DefaultEpsilon2)))
	}
}

// BenchmarkGenerate_F4_Bucket measures the centroid-hash index on the same group.
func BenchmarkGenerate_F4_Bucket(b *testing.B) {
	start, mirrors, _ := seed(b, "F4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = orbit.Generate(start, mirrors, orbit.WithIndex(orbit.NewBucketIndex(flag.DefaultEpsilon2)))
	}
}
