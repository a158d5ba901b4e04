package searcher

import (
	"container/heap"
	"math"

	"github.com/Ruhan116/CLIR/pkg"
	"github.com/Ruhan116/CLIR/pkg/datastructure"

	"go.uber.org/zap"
)

// NormalizeWeights validates a weight map for hybrid fusion. Unknown method
// names and negative weights are configuration errors. Weights that do not
// sum to 1 are rescaled in place of rejecting the request, with a warning so
// a misconfigured client is visible in the logs.
func NormalizeWeights(weights map[string]float64, log *zap.Logger) (map[string]float64, error) {
	if len(weights) == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "hybrid weights must not be empty")
	}

	known := make(map[string]struct{})
	for _, method := range KnownMethods() {
		known[method] = struct{}{}
	}

	total := 0.0
	for method, weight := range weights {
		if _, ok := known[method]; !ok {
			return nil, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "unknown search method %q", method)
		}
		if weight < 0 {
			return nil, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "negative weight %f for method %q", weight, method)
		}
		total += weight
	}
	if total == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "hybrid weights sum to zero")
	}

	normalized := make(map[string]float64, len(weights))
	for method, weight := range weights {
		normalized[method] = weight / total
	}
	if math.Abs(total-1.0) > 1e-9 && log != nil {
		log.Warn("hybrid weights do not sum to 1, rescaling",
			zap.Float64("sum", total))
	}
	return normalized, nil
}

// minMaxNormalize rescales raw per-document scores into [0,1] per query. A
// degenerate score range (every document scored the same) maps to 1.0 so a
// single-hit method still contributes instead of zeroing itself out.
func minMaxNormalize(scores map[int]float64) map[int]float64 {
	if len(scores) == 0 {
		return scores
	}

	minScore := math.Inf(1)
	maxScore := math.Inf(-1)
	for _, score := range scores {
		if score < minScore {
			minScore = score
		}
		if score > maxScore {
			maxScore = score
		}
	}

	normalized := make(map[int]float64, len(scores))
	if maxScore == minScore {
		for docID := range scores {
			normalized[docID] = 1.0
		}
		return normalized
	}
	for docID, score := range scores {
		normalized[docID] = (score - minScore) / (maxScore - minScore)
	}
	return normalized
}

// fuseScores combines normalized per-method scores into one fused score per
// document. A document missing from a method contributes 0 for that method.
func fuseScores(methodScores map[string]map[int]float64,
	weights map[string]float64) map[int]float64 {

	fused := make(map[int]float64)
	for method, scores := range methodScores {
		weight := weights[method]
		for docID, score := range scores {
			fused[docID] += weight * score
		}
	}
	return fused
}

// selectTopK keeps the k best-scoring docIDs with a bounded min-heap. Docs
// are offered in corpus order, and an incoming score must strictly beat the
// current minimum to evict it, so among equal scores the earlier document
// wins. The returned slice is sorted by descending score, ties in ascending
// docID order.
func selectTopK(fused map[int]float64, corpusOrder []int, topK int) []datastructure.DocScore {
	if topK <= 0 {
		topK = len(fused)
	}

	pq := datastructure.NewMinPriorityQueue[int, float64]()
	for _, docID := range corpusOrder {
		score, ok := fused[docID]
		if !ok {
			continue
		}
		if pq.Size() < topK {
			heap.Push(pq, datastructure.NewPriorityQueueNode(score, docID))
			continue
		}
		if score > pq.GetMin().GetRank() {
			heap.Pop(pq)
			heap.Push(pq, datastructure.NewPriorityQueueNode(score, docID))
		}
	}

	results := make([]datastructure.DocScore, pq.Size())
	for i := pq.Size() - 1; i >= 0; i-- {
		node := pq.GetMin()
		heap.Pop(pq)
		results[i] = datastructure.NewDocScore(node.GetItem(), node.GetRank())
	}

	// heap pops equal ranks in arbitrary order; restore corpus order inside
	// each score band.
	for start := 0; start < len(results); {
		end := start + 1
		for end < len(results) && results[end].Score == results[start].Score {
			end++
		}
		sortDocScoresByID(results[start:end])
		start = end
	}
	return results
}

func sortDocScoresByID(band []datastructure.DocScore) {
	for i := 1; i < len(band); i++ {
		for j := i; j > 0 && band[j].DocID < band[j-1].DocID; j-- {
			band[j], band[j-1] = band[j-1], band[j]
		}
	}
}
