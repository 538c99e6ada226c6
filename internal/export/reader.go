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

// maxTensorRank bounds the rank field of a generic tensor record. The
// writer never produces more axes than this; a larger value means the
// stream is corrupt or misaligned.
const maxTensorRank = 8

// ModelReader reads models in ffnet format. It is the inverse of
// ModelWriter and consumes the exact field sequence the writer produces.
type ModelReader struct {
	file   *os.File
	closed bool
}

// NewModelReader opens a model file for reading.
func NewModelReader(path string) (*ModelReader, error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &ModelReader{
		file:   file,
		closed: false,
	}, nil
}

// ReadModel reads the full model from the file.
func (r *ModelReader) ReadModel() (*nn.Model, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}
	return Read(r.file)
}

// Close closes the reader and the underlying file.
func (r *ModelReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// Load reads the model stored at path.
func Load(path string) (*nn.Model, error) {
	reader, err := NewModelReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	return reader.ReadModel()
}

// Read reads a model from an io.Reader.
func Read(r io.Reader) (*nn.Model, error) {
	count, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read layer count: %w", err)
	}

	model := nn.NewModel()
	for i := 0; i < int(count); i++ {
		layer, err := readLayer(r)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		model.Add(layer)
	}

	return model, nil
}

func readLayer(r io.Reader) (nn.Layer, error) {
	tag, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read type tag: %w", err)
	}

	switch tag {
	case LayerScaling:
		fields, err := readScalars(r, 4)
		if err != nil {
			return nil, err
		}
		return nn.NewScaling(fields[0], fields[1], fields[2], fields[3]), nil
	case LayerUnscaling:
		fields, err := readScalars(r, 4)
		if err != nil {
			return nil, err
		}
		return nn.NewUnscaling(fields[0], fields[1], fields[2], fields[3]), nil
	case LayerDense:
		return readDense(r)
	case LayerActivation:
		activation, err := readActivation(r)
		if err != nil {
			return nil, err
		}
		return nn.NewActivationLayer(activation), nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedLayer, tag)
	}
}

func readDense(r io.Reader) (*nn.Dense, error) {
	inputDim, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dimension: %w", err)
	}
	outputDim, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read output dimension: %w", err)
	}
	biasLen, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bias length: %w", err)
	}
	if biasLen != outputDim {
		return nil, fmt.Errorf("%w: bias length %d does not match output dimension %d",
			ErrShapeInconsistency, biasLen, outputDim)
	}

	weightShape := tensor.Shape{int(inputDim), int(outputDim)}
	if err := weightShape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeInconsistency, err)
	}

	weightData, err := readFloats(r, weightShape.NumElements())
	if err != nil {
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}
	biasData, err := readFloats(r, int(biasLen))
	if err != nil {
		return nil, fmt.Errorf("failed to read biases: %w", err)
	}

	activation, err := readActivation(r)
	if err != nil {
		return nil, err
	}

	weights, err := tensor.FromSlice(weightData, weightShape)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeInconsistency, err)
	}
	biases, err := tensor.FromSlice(biasData, tensor.Shape{int(biasLen)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeInconsistency, err)
	}

	return nn.NewDense(weights, biases, activation)
}

func readActivation(r io.Reader) (nn.Activation, error) {
	code, err := readUint32(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read activation tag: %w", err)
	}
	activation, ok := activationFromCode(code)
	if !ok {
		return 0, fmt.Errorf("%w: tag %d", ErrUnsupportedActivation, code)
	}
	return activation, nil
}

// ReadTensor reads the generic tensor record written by WriteTensor.
func ReadTensor(r io.Reader) (*tensor.Tensor, error) {
	rank, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor rank: %w", err)
	}
	if rank > maxTensorRank {
		return nil, fmt.Errorf("invalid tensor rank %d (max %d)", rank, maxTensorRank)
	}

	shape := make(tensor.Shape, rank)
	for i := range shape {
		extent, err := readUint32(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read extent of axis %d: %w", i, err)
		}
		shape[i] = int(extent)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tensor shape: %w", err)
	}

	data, err := readFloats(r, shape.NumElements())
	if err != nil {
		return nil, err
	}
	return tensor.FromSlice(data, shape)
}

// readFloats reads count float32 elements, decoding through a chunk-sized
// buffer to mirror the writer's streaming policy.
func readFloats(r io.Reader, count int) ([]float32, error) {
	out := make([]float32, count)
	buf := make([]byte, FloatChunk*4)

	for start := 0; start < count; start += FloatChunk {
		end := start + FloatChunk
		if end > count {
			end = count
		}

		b := buf[:(end-start)*4]
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("failed to read float chunk: %w", err)
		}
		for i := 0; i < end-start; i++ {
			out[start+i] = math.Float32frombits(ByteOrder.Uint32(b[i*4:]))
		}
	}

	return out, nil
}

func readScalars(r io.Reader, count int) ([]float32, error) {
	out := make([]float32, count)
	for i := range out {
		if err := binary.Read(r, ByteOrder, &out[i]); err != nil {
			return nil, fmt.Errorf("failed to read scalar: %w", err)
		}
	}
	return out, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, ByteOrder, &v); err != nil {
		return 0, err
	}
	return v, nil
}
