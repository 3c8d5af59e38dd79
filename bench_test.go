package randomx

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkHash(b *testing.B) {
	cache, dataset := testFixtures(b)
	input := make([]byte, 76)

	b.Run("Light", func(b *testing.B) {
		vm := newLightVM(b, cache)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = vm.Hash(input)
		}
	})

	b.Run("Fast", func(b *testing.B) {
		vm := newFastVM(b, dataset)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = vm.Hash(input)
		}
	})
}

func BenchmarkPipeline(b *testing.B) {
	_, dataset := testFixtures(b)
	vm := newFastVM(b, dataset)
	input := make([]byte, 76)

	b.ReportAllocs()
	b.ResetTimer()
	vm.HashFirst(input)
	for i := 0; i < b.N; i++ {
		_, _ = vm.HashNext(input)
	}
	_, _ = vm.HashLast()
}

func BenchmarkCacheSetKey(b *testing.B) {
	cache, err := NewCache(FlagDefault)
	if err != nil {
		b.Fatal(err)
	}
	defer cache.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.SetKey([]byte("bench key"))
	}
}

func BenchmarkDatasetInit(b *testing.B) {
	cache, _ := testFixtures(b)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			d, err := NewDataset(FlagDefault)
			if err != nil {
				b.Fatal(err)
			}
			defer d.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := d.InitParallel(context.Background(), cache, workers); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
