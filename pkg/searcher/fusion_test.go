package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeWeights(t *testing.T) {
	log := zap.NewNop()

	t.Run("weights summing to one pass through", func(t *testing.T) {
		weights, err := NormalizeWeights(map[string]float64{
			MethodLexical: 0.5, MethodEdit: 0.25, MethodJaccard: 0.25,
		}, log)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, weights[MethodLexical], 1e-9)
	})

	t.Run("weights are rescaled to sum to one", func(t *testing.T) {
		weights, err := NormalizeWeights(map[string]float64{
			MethodEdit: 2.0, MethodJaccard: 2.0,
		}, log)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, weights[MethodEdit], 1e-9)
		assert.InDelta(t, 0.5, weights[MethodJaccard], 1e-9)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := NormalizeWeights(map[string]float64{MethodEdit: -0.1, MethodJaccard: 1.1}, log)
		assert.Error(t, err)
	})

	t.Run("empty weights rejected", func(t *testing.T) {
		_, err := NormalizeWeights(map[string]float64{}, log)
		assert.Error(t, err)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := NormalizeWeights(map[string]float64{"semantic": 1.0}, log)
		assert.Error(t, err)
	})

	t.Run("all-zero weights rejected", func(t *testing.T) {
		_, err := NormalizeWeights(map[string]float64{MethodEdit: 0, MethodJaccard: 0}, log)
		assert.Error(t, err)
	})
}

func TestMinMaxNormalize(t *testing.T) {
	t.Run("rescales into unit interval", func(t *testing.T) {
		normalized := minMaxNormalize(map[int]float64{1: 2.0, 2: 4.0, 3: 6.0})
		assert.InDelta(t, 0.0, normalized[1], 1e-9)
		assert.InDelta(t, 0.5, normalized[2], 1e-9)
		assert.InDelta(t, 1.0, normalized[3], 1e-9)
	})

	t.Run("degenerate range maps to one", func(t *testing.T) {
		normalized := minMaxNormalize(map[int]float64{1: 3.3, 2: 3.3})
		assert.Equal(t, 1.0, normalized[1])
		assert.Equal(t, 1.0, normalized[2])
	})

	t.Run("empty map stays empty", func(t *testing.T) {
		assert.Empty(t, minMaxNormalize(map[int]float64{}))
	})
}

func TestFuseScores(t *testing.T) {
	fused := fuseScores(map[string]map[int]float64{
		MethodLexical: {1: 1.0, 2: 0.5},
		MethodEdit:    {2: 1.0},
	}, map[string]float64{MethodLexical: 0.6, MethodEdit: 0.4})

	// doc 1 misses the edit method, contributing 0 for it
	assert.InDelta(t, 0.6, fused[1], 1e-9)
	assert.InDelta(t, 0.7, fused[2], 1e-9)
}

func TestSelectTopK(t *testing.T) {
	corpusOrder := []int{10, 20, 30, 40}

	t.Run("keeps the k best in descending order", func(t *testing.T) {
		results := selectTopK(map[int]float64{10: 0.1, 20: 0.9, 30: 0.5, 40: 0.7}, corpusOrder, 2)
		require.Len(t, results, 2)
		assert.Equal(t, 20, results[0].DocID)
		assert.Equal(t, 40, results[1].DocID)
	})

	t.Run("equal scores keep corpus order", func(t *testing.T) {
		results := selectTopK(map[int]float64{10: 0.5, 20: 0.5, 30: 0.5}, corpusOrder, 3)
		require.Len(t, results, 3)
		assert.Equal(t, []int{10, 20, 30},
			[]int{results[0].DocID, results[1].DocID, results[2].DocID})
	})

	t.Run("topK zero returns everything", func(t *testing.T) {
		results := selectTopK(map[int]float64{10: 0.1, 30: 0.2}, corpusOrder, 0)
		assert.Len(t, results, 2)
	})
}
