// Copyright 2026 FFNet ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model is the public API for building and exporting feed-forward
// models in the ffnet binary format.
//
// A model is an ordered stack of layers: min-max scalers, dense layers and
// standalone activations. Export streams it to a compact binary file that a
// minimal numeric runtime can load without any ML framework:
//
//	weights, _ := model.FromMatrix([][]float32{{1, 2}, {3, 4}, {5, 6}})
//	biases, _ := model.FromSlice([]float32{0.5, -0.5}, model.Shape{2})
//	dense, _ := model.NewDense(weights, biases, model.ReLU)
//
//	m := model.New(
//	    model.NewScaling(0, 1, 0, 1),
//	    dense,
//	    model.NewActivation(model.Sigmoid),
//	)
//	if err := model.Export(m, "net.ffnet"); err != nil {
//	    log.Fatal(err)
//	}
//
// All multi-byte fields in the file are little-endian; see the export
// package for the full layout.
package model

import (
	"io"

	"github.com/ffnet-ml/ffnet/internal/export"
	"github.com/ffnet-ml/ffnet/internal/nn"
	"github.com/ffnet-ml/ffnet/internal/tensor"
)

// Tensor types

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float32 array with row-major layout.
type Tensor = tensor.Tensor

// FromSlice creates a tensor viewing data as an array of the given shape.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromMatrix creates a 2-D tensor from a slice of equal-length rows.
func FromMatrix(rows [][]float32) (*Tensor, error) {
	return tensor.FromMatrix(rows)
}

// Layers

// Model is an ordered sequence of layers.
type Model = nn.Model

// Layer is one stage of a feed-forward model.
type Layer = nn.Layer

// Scaling is a min-max input scaler.
type Scaling = nn.Scaling

// Unscaling is the inverse of Scaling.
type Unscaling = nn.Unscaling

// Dense is a fully connected affine transform followed by an activation.
type Dense = nn.Dense

// ActivationLayer is a standalone nonlinearity.
type ActivationLayer = nn.ActivationLayer

// New creates a model from the given layers, in order.
func New(layers ...Layer) *Model {
	return nn.NewModel(layers...)
}

// NewScaling creates a min-max scaling layer.
func NewScaling(dataMin, dataMax, featureInf, featureSup float32) *Scaling {
	return nn.NewScaling(dataMin, dataMax, featureInf, featureSup)
}

// NewUnscaling creates a min-max unscaling layer.
func NewUnscaling(dataMin, dataMax, featureInf, featureSup float32) *Unscaling {
	return nn.NewUnscaling(dataMin, dataMax, featureInf, featureSup)
}

// NewDense creates a dense layer and validates its shapes.
func NewDense(weights, biases *Tensor, activation Activation) (*Dense, error) {
	return nn.NewDense(weights, biases, activation)
}

// NewActivation creates a standalone activation layer.
func NewActivation(activation Activation) *ActivationLayer {
	return nn.NewActivationLayer(activation)
}

// Activations

// Activation identifies a fixed elementwise nonlinearity.
type Activation = nn.Activation

// Supported activations.
const (
	Linear      = nn.Linear
	ReLU        = nn.ReLU
	Softplus    = nn.Softplus
	Sigmoid     = nn.Sigmoid
	Tanh        = nn.Tanh
	HardSigmoid = nn.HardSigmoid
)

// ParseActivation maps a framework-side activation name ("relu",
// "hard_sigmoid", ...) to its enum value.
func ParseActivation(name string) (Activation, bool) {
	return nn.ParseActivation(name)
}

// Export / Load

// Export writes the model to path, truncating any existing file. On error
// the destination is left in an undefined, possibly truncated state.
func Export(m *Model, path string) error {
	return export.Export(m, path)
}

// Write writes the model to an io.Writer.
func Write(w io.Writer, m *Model) error {
	return export.Write(w, m)
}

// Load reads the model stored at path.
func Load(path string) (*Model, error) {
	return export.Load(path)
}

// Read reads a model from an io.Reader.
func Read(r io.Reader) (*Model, error) {
	return export.Read(r)
}

// Errors, re-exported for errors.Is matching by callers.
var (
	ErrUnsupportedLayer      = export.ErrUnsupportedLayer
	ErrUnsupportedActivation = export.ErrUnsupportedActivation
	ErrShapeInconsistency    = export.ErrShapeInconsistency
)
