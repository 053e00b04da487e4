package kangaroo

import (
	"runtime"
	"sync"

	"golang.org/x/crypto/sha3"
)

// parallelThreshold is the trailing-chunk count at which
// chaining-value computation moves off the calling goroutine.
// Below 16 chunks (128 KiB of leaf data),
// goroutine startup costs more than the hashing saves.
const parallelThreshold = 16

// chainingValues hashes the nChunks trailing chunks in data
// and returns their chaining values concatenated in chunk order.
// Every chunk is ChunkSize bytes except possibly the last.
func chainingValues(data []byte, nChunks int) []byte {
	// One slab for all chaining values.
	// Each chunk writes its own pre-indexed slot,
	// so the parallel path needs no ordering fixup afterward.
	cvs := make([]byte, nChunks*chainingValueSize)

	if nChunks < parallelThreshold {
		sequentialChainingValues(data, nChunks, cvs)
	} else {
		parallelChainingValues(data, nChunks, cvs)
	}

	return cvs
}

// sequentialChainingValues computes all chaining values on the calling
// goroutine, reusing a single sponge instance reset between chunks.
func sequentialChainingValues(data []byte, nChunks int, cvs []byte) {
	sponge := sha3.NewTurboShake128(dsLeaf)
	for i := range nChunks {
		if i > 0 {
			sponge.Reset()
		}
		hashChunk(sponge, data, i, cvs)
	}
}

// parallelChainingValues fans the chunks out to a bounded set of workers.
// Each chunk's chaining value depends only on that chunk,
// and every worker writes into pre-indexed slots of cvs,
// so the result is byte-identical to the sequential path.
func parallelChainingValues(data []byte, nChunks int, cvs []byte) {
	nWorkers := min(runtime.GOMAXPROCS(0), nChunks)

	var wg sync.WaitGroup
	wg.Add(nWorkers)

	for w := range nWorkers {
		go func() {
			defer wg.Done()

			sponge := sha3.NewTurboShake128(dsLeaf)
			for i := w; i < nChunks; i += nWorkers {
				if i != w {
					sponge.Reset()
				}
				hashChunk(sponge, data, i, cvs)
			}
		}()
	}

	wg.Wait()
}

// hashChunk absorbs the i'th chunk of data into the given leaf sponge
// and squeezes its chaining value into the i'th slot of cvs.
// The sponge must be freshly created or reset.
func hashChunk(sponge sha3.ShakeHash, data []byte, i int, cvs []byte) {
	start := i * ChunkSize
	end := min(start+ChunkSize, len(data))

	_, _ = sponge.Write(data[start:end])
	_, _ = sponge.Read(cvs[i*chainingValueSize : (i+1)*chainingValueSize])
}
