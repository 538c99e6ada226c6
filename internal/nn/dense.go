package nn

import (
	"fmt"

	"github.com/ffnet-ml/ffnet/internal/tensor"
)

// Dense is a fully connected affine transform followed by an activation.
//
// Weights has shape [input_dim, output_dim] and Biases has shape
// [output_dim]. The dimensions recorded in the exported file are taken from
// the weight matrix's shape, so the two tensors must agree.
type Dense struct {
	Weights    *tensor.Tensor // [input_dim, output_dim]
	Biases     *tensor.Tensor // [output_dim]
	Activation Activation
}

// NewDense creates a dense layer and validates its shapes.
func NewDense(weights, biases *tensor.Tensor, activation Activation) (*Dense, error) {
	d := &Dense{Weights: weights, Biases: biases, Activation: activation}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// InputDim returns the input dimension (weight matrix rows).
func (d *Dense) InputDim() int {
	return d.Weights.Shape()[0]
}

// OutputDim returns the output dimension (weight matrix columns).
func (d *Dense) OutputDim() int {
	return d.Weights.Shape()[1]
}

// Validate checks that the weight matrix is 2-D, the bias vector is 1-D,
// and the bias length equals the weight matrix's second dimension.
func (d *Dense) Validate() error {
	if d.Weights == nil || d.Biases == nil {
		return fmt.Errorf("dense layer missing weights or biases")
	}
	if d.Weights.Rank() != 2 {
		return fmt.Errorf("dense weights must be 2-D, got shape %v", d.Weights.Shape())
	}
	if d.Biases.Rank() != 1 {
		return fmt.Errorf("dense biases must be 1-D, got shape %v", d.Biases.Shape())
	}
	if d.Biases.Shape()[0] != d.Weights.Shape()[1] {
		return fmt.Errorf("dense bias length %d does not match output dimension %d",
			d.Biases.Shape()[0], d.Weights.Shape()[1])
	}
	return nil
}

// Kind returns KindDense.
func (d *Dense) Kind() LayerKind {
	return KindDense
}
