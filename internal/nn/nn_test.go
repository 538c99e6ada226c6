package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffnet-ml/ffnet/internal/tensor"
)

func TestParseActivation(t *testing.T) {
	cases := map[string]Activation{
		"linear":       Linear,
		"relu":         ReLU,
		"softplus":     Softplus,
		"sigmoid":      Sigmoid,
		"tanh":         Tanh,
		"hard_sigmoid": HardSigmoid,
	}
	for name, want := range cases {
		got, ok := ParseActivation(name)
		require.True(t, ok, "ParseActivation(%q)", name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
}

func TestParseActivationUnknown(t *testing.T) {
	for _, name := range []string{"", "softmax", "elu", "ReLU", "hard sigmoid"} {
		_, ok := ParseActivation(name)
		assert.False(t, ok, "ParseActivation(%q) must fail", name)
	}
}

func TestActivationValid(t *testing.T) {
	assert.True(t, Linear.Valid())
	assert.True(t, HardSigmoid.Valid())
	assert.False(t, Activation(0).Valid())
	assert.False(t, Activation(7).Valid())
}

func TestNewDense(t *testing.T) {
	weights, err := tensor.FromMatrix([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	biases, err := tensor.FromSlice([]float32{0.5, -0.5}, tensor.Shape{2})
	require.NoError(t, err)

	dense, err := NewDense(weights, biases, ReLU)
	require.NoError(t, err)
	assert.Equal(t, 3, dense.InputDim())
	assert.Equal(t, 2, dense.OutputDim())
	assert.Equal(t, KindDense, dense.Kind())
}

func TestNewDenseBiasMismatch(t *testing.T) {
	weights, err := tensor.FromMatrix([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	biases, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)

	_, err = NewDense(weights, biases, Linear)
	require.Error(t, err)
}

func TestNewDenseWeightsNot2D(t *testing.T) {
	weights, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	biases, err := tensor.FromSlice([]float32{1}, tensor.Shape{1})
	require.NoError(t, err)

	_, err = NewDense(weights, biases, Linear)
	require.Error(t, err)
}

func TestModelOrderPreserved(t *testing.T) {
	scaling := NewScaling(0, 1, 0, 1)
	act := NewActivationLayer(Tanh)
	unscaling := NewUnscaling(0, 1, 0, 1)

	model := NewModel(scaling).Add(act).Add(unscaling)
	require.Equal(t, 3, model.Len())

	kinds := []LayerKind{}
	for _, layer := range model.Layers() {
		kinds = append(kinds, layer.Kind())
	}
	assert.Equal(t, []LayerKind{KindScaling, KindActivation, KindUnscaling}, kinds)
}

func TestLayerKindString(t *testing.T) {
	assert.Equal(t, "Scaling", KindScaling.String())
	assert.Equal(t, "Unscaling", KindUnscaling.String())
	assert.Equal(t, "Dense", KindDense.String())
	assert.Equal(t, "Activation", KindActivation.String())
}
