package model_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffnet-ml/ffnet/model"
)

func TestExportLoadRoundTrip(t *testing.T) {
	weights, err := model.FromMatrix([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	biases, err := model.FromSlice([]float32{0.5, -0.5}, model.Shape{2})
	require.NoError(t, err)
	dense, err := model.NewDense(weights, biases, model.ReLU)
	require.NoError(t, err)

	m := model.New(
		model.NewScaling(0, 1, 0, 1),
		dense,
		model.NewActivation(model.Sigmoid),
	)

	path := filepath.Join(t.TempDir(), "net.ffnet")
	require.NoError(t, model.Export(m, path))

	loaded, err := model.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	decoded, ok := loaded.Layers()[1].(*model.Dense)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, decoded.Weights.Data())
	assert.Equal(t, model.ReLU, decoded.Activation)
}

func TestParseActivation(t *testing.T) {
	act, ok := model.ParseActivation("hard_sigmoid")
	require.True(t, ok)
	assert.Equal(t, model.HardSigmoid, act)

	_, ok = model.ParseActivation("swish")
	assert.False(t, ok)
}
