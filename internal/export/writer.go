package export

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ffnet-ml/ffnet/internal/nn"
	"github.com/ffnet-ml/ffnet/internal/tensor"
)

// ModelWriter writes models in ffnet format.
type ModelWriter struct {
	file   *os.File
	closed bool
}

// NewModelWriter creates a writer for the given path, truncating any
// existing file.
func NewModelWriter(path string) (*ModelWriter, error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for model export
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &ModelWriter{
		file:   file,
		closed: false,
	}, nil
}

// WriteModel writes the full model to the file.
//
// On failure the file is left truncated at the point of the error; no
// rollback or temp-file swap is attempted.
func (w *ModelWriter) WriteModel(m *nn.Model) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return Write(w.file, m)
}

// Close closes the writer and the underlying file.
func (w *ModelWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Export writes the model to path. This is the common entry point; it
// creates the destination, writes the full layer sequence in model order
// and closes the file, propagating the first error encountered.
func Export(m *nn.Model, path string) error {
	writer, err := NewModelWriter(path)
	if err != nil {
		return err
	}
	if err := writer.WriteModel(m); err != nil {
		_ = writer.Close() // best effort, the file is invalid anyway
		return err
	}
	return writer.Close()
}

// Write writes the model to an io.Writer.
// This is useful for writing to buffers or network connections.
func Write(w io.Writer, m *nn.Model) error {
	layers := m.Layers()
	if err := writeUint32(w, uint32(len(layers))); err != nil {
		return fmt.Errorf("failed to write layer count: %w", err)
	}

	for i, layer := range layers {
		if err := writeLayer(w, layer); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return nil
}

// writeLayer dispatches on the concrete layer type and emits its tagged
// record. The variant set is closed; anything else is rejected before any
// bytes for the layer are written.
func writeLayer(w io.Writer, layer nn.Layer) error {
	switch l := layer.(type) {
	case *nn.Scaling:
		return writeScaling(w, l)
	case *nn.Unscaling:
		return writeUnscaling(w, l)
	case *nn.Dense:
		return writeDense(w, l)
	case *nn.ActivationLayer:
		return writeActivationLayer(w, l)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedLayer, layer)
	}
}

func writeScaling(w io.Writer, l *nn.Scaling) error {
	if err := writeUint32(w, LayerScaling); err != nil {
		return fmt.Errorf("failed to write type tag: %w", err)
	}
	return writeScalars(w, l.DataMin, l.DataMax, l.FeatureInf, l.FeatureSup)
}

func writeUnscaling(w io.Writer, l *nn.Unscaling) error {
	if err := writeUint32(w, LayerUnscaling); err != nil {
		return fmt.Errorf("failed to write type tag: %w", err)
	}
	return writeScalars(w, l.DataMin, l.DataMax, l.FeatureInf, l.FeatureSup)
}

// writeDense emits: tag, input_dim, output_dim, bias_len, flattened weights,
// biases, activation tag. The order is fixed; the reader has no
// self-describing schema and consumes exactly this sequence. Shape and
// activation problems are detected before the tag is written.
func writeDense(w io.Writer, l *nn.Dense) error {
	code, ok := activationCode(l.Activation)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedActivation, l.Activation)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrShapeInconsistency, err)
	}

	inputDim := l.InputDim()
	outputDim := l.OutputDim()

	if err := writeUint32(w, LayerDense); err != nil {
		return fmt.Errorf("failed to write type tag: %w", err)
	}
	if err := writeUint32(w, uint32(inputDim)); err != nil {
		return fmt.Errorf("failed to write input dimension: %w", err)
	}
	if err := writeUint32(w, uint32(outputDim)); err != nil {
		return fmt.Errorf("failed to write output dimension: %w", err)
	}
	// bias_len always equals output_dim; it is written redundantly so a
	// reader can validate weight/bias shape agreement.
	if err := writeUint32(w, uint32(l.Biases.Shape()[0])); err != nil {
		return fmt.Errorf("failed to write bias length: %w", err)
	}

	if err := writeFloats(w, l.Weights.Data()); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}
	if err := writeFloats(w, l.Biases.Data()); err != nil {
		return fmt.Errorf("failed to write biases: %w", err)
	}

	return writeUint32(w, code)
}

func writeActivationLayer(w io.Writer, l *nn.ActivationLayer) error {
	code, ok := activationCode(l.Activation)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedActivation, l.Activation)
	}
	if err := writeUint32(w, LayerActivation); err != nil {
		return fmt.Errorf("failed to write type tag: %w", err)
	}
	return writeUint32(w, code)
}

// WriteTensor writes the generic tensor record: rank, one extent per axis
// outermost first, then the flattened row-major data. It is used where the
// shape is not already carried by explicit dimension fields.
func WriteTensor(w io.Writer, t *tensor.Tensor) error {
	shape := t.Shape()
	if err := writeUint32(w, uint32(len(shape))); err != nil {
		return fmt.Errorf("failed to write tensor rank: %w", err)
	}
	for i, extent := range shape {
		if err := writeUint32(w, uint32(extent)); err != nil {
			return fmt.Errorf("failed to write extent of axis %d: %w", i, err)
		}
	}
	return writeFloats(w, t.Data())
}

// writeFloats writes a flattened element sequence in chunks of FloatChunk
// elements, each encoded into a reused buffer and written immediately. Peak
// memory is one chunk regardless of array length, and the bytes produced do
// not depend on the chunking.
//
// The element count accepted by the sink must equal the array length; a
// mismatch is an internal-consistency failure, not a user error.
func writeFloats(w io.Writer, data []float32) error {
	buf := make([]byte, FloatChunk*4)
	written := 0

	for start := 0; start < len(data); start += FloatChunk {
		end := start + FloatChunk
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]

		b := buf[:len(chunk)*4]
		for i, v := range chunk {
			ByteOrder.PutUint32(b[i*4:], math.Float32bits(v))
		}

		n, err := w.Write(b)
		if err != nil {
			return fmt.Errorf("failed to write float chunk: %w", err)
		}
		written += n / 4
	}

	if written != len(data) {
		return fmt.Errorf("%w: wrote %d of %d elements", ErrShapeInconsistency, written, len(data))
	}
	return nil
}

// writeScalars writes float32 values directly, one at a time. Used for the
// four scaler fields, which are scalars rather than arrays.
func writeScalars(w io.Writer, values ...float32) error {
	for _, v := range values {
		if err := binary.Write(w, ByteOrder, v); err != nil {
			return fmt.Errorf("failed to write scalar: %w", err)
		}
	}
	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	return binary.Write(w, ByteOrder, v)
}
