package cache

import "testing"

func BenchmarkCacheGet(b *testing.B) {
	c := New[int, int](1024)
	for i := range 1024 {
		c.Set(i, i)
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.Get(i & 1023)
		i++
	}
}

func BenchmarkCacheGetOrCreateChurn(b *testing.B) {
	c := New[int, int](256)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.GetOrCreate(i, func() int { return i })
		i++
	}
}
