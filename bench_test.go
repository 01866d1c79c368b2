package chainmap

import (
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
)

// The chain map is O(n) per lookup by design; the treemap baseline is here
// to keep that trade-off visible, not to win.

const benchSize = 1000

func benchKeys() []int {
	keys := make([]int, benchSize)
	for i := range keys {
		keys[i] = (i * 7919) % benchSize
	}
	return keys
}

func BenchmarkChainMapPut(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := New(Plain[int, int]())
		for _, k := range keys {
			_ = m.Put(k, k)
		}
	}
}

func BenchmarkTreeMapPut(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tm := treemap.NewWithIntComparator()
		for _, k := range keys {
			tm.Put(k, k)
		}
	}
}

func BenchmarkChainMapGet(b *testing.B) {
	keys := benchKeys()
	m, _ := New(Plain[int, int]())
	for _, k := range keys {
		_ = m.Put(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[i%benchSize])
	}
}

func BenchmarkTreeMapGet(b *testing.B) {
	keys := benchKeys()
	tm := treemap.NewWithIntComparator()
	for _, k := range keys {
		tm.Put(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tm.Get(keys[i%benchSize])
	}
}
