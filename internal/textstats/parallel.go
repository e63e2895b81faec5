package textstats

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const minChunkSize = 64 << 10

// AnalyzeParallel splits text into word-aligned chunks, counts them
// concurrently and merges the per-chunk maps in input order. The result is
// identical to Analyze. workers <= 0 uses GOMAXPROCS.
func AnalyzeParallel(ctx context.Context, text []byte, workers int, opts ...Option) (Report, error) {
	o := newOptions(opts)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := splitChunks(text, workers, minChunkSize)

	maps := make([]*FrequencyMap, len(chunks))
	alphas := make([]int, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			maps[i], alphas[i] = accumulate(chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("failed to analyze chunks: %w", err)
	}

	sizeHint := 0
	if len(maps) > 0 {
		sizeHint = maps[0].Len()
	}
	merged := NewFrequencyMap(sizeHint)
	alpha := 0
	for i, m := range maps {
		merged.Merge(m)
		alpha = addCount(alpha, alphas[i])
	}
	return buildReport(merged, alpha, o.topN), nil
}

// splitChunks cuts text into at most about parts pieces of at least minSize
// bytes. Each cut is moved forward past any letters so no word straddles
// two chunks.
func splitChunks(text []byte, parts, minSize int) [][]byte {
	if parts <= 1 || len(text) < 2*minSize {
		return [][]byte{text}
	}
	size := len(text) / parts
	if size < minSize {
		size = minSize
	}
	chunks := make([][]byte, 0, parts+1)
	for start := 0; start < len(text); {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		for end < len(text) && isAlpha(text[end]) {
			end++
		}
		chunks = append(chunks, text[start:end])
		start = end
	}
	return chunks
}
