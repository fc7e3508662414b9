package weighted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Iterations)
	assert.Equal(t, []float64{1}, cfg.LayerWeights)
	assert.Equal(t, 4.0, cfg.MinWeightToDie)
	assert.Equal(t, 4.0, cfg.MinWeightToSpawn)
}

func TestSetLayerCountResetsWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LayerWeights[0] = 0.3
	cfg.SetLayerCount(3)
	assert.Equal(t, 3, cfg.LayerCount)
	assert.Equal(t, []float64{1, 1, 1}, cfg.LayerWeights)

	cfg.SetLayerCount(0)
	assert.Equal(t, 1, cfg.LayerCount)
	require.NoError(t, cfg.Validate())
}

func TestCloneDoesNotShareWeights(t *testing.T) {
	cfg := DefaultConfig()
	cp := cfg.Clone()
	cp.LayerWeights[0] = 0.1
	assert.Equal(t, 1.0, cfg.LayerWeights[0])
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"iterations":     "5",
		"weights":        "1, 0.5,0.25",
		"prev":           "true",
		"current":        "1",
		"current_weight": "0.75",
		"die":            "3.5",
		"spawn":          "4.5",
		"walling":        "true",
	})
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, 3, cfg.LayerCount)
	assert.Equal(t, []float64{1, 0.5, 0.25}, cfg.LayerWeights)
	assert.True(t, cfg.UsePrevStates)
	assert.True(t, cfg.UseCurrentCell)
	assert.Equal(t, 0.75, cfg.CurrentCellWeight)
	assert.Equal(t, 3.5, cfg.MinWeightToDie)
	assert.Equal(t, 4.5, cfg.MinWeightToSpawn)
	assert.True(t, cfg.PreferWalling)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"iterations": "-2",
		"layers":     "zero",
		"weights":    "1,x",
		"die":        "lots",
	})
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestFromMapLayersWithoutWeights(t *testing.T) {
	cfg := FromMap(map[string]string{"layers": "2"})
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []float64{1, 1}, cfg.LayerWeights)
}
