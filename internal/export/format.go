package export

import (
	"encoding/binary"

	"github.com/ffnet-ml/ffnet/internal/nn"
)

// Layer type tags.
const (
	LayerScaling    uint32 = 1
	LayerUnscaling  uint32 = 2
	LayerDense      uint32 = 3
	LayerActivation uint32 = 4
)

// Activation tags.
const (
	ActivationLinear      uint32 = 1
	ActivationReLU        uint32 = 2
	ActivationSoftplus    uint32 = 3
	ActivationSigmoid     uint32 = 4
	ActivationTanh        uint32 = 5
	ActivationHardSigmoid uint32 = 6
)

// FloatChunk is the number of float32 elements encoded per write. It is a
// format-level constant rather than a tunable: output bytes are identical
// for any chunking, and the value bounds peak encoding memory.
const FloatChunk = 1024

// ByteOrder is the byte order of every multi-byte field in the format.
var ByteOrder = binary.LittleEndian

// activationCode maps an activation to its wire tag.
func activationCode(a nn.Activation) (uint32, bool) {
	switch a {
	case nn.Linear:
		return ActivationLinear, true
	case nn.ReLU:
		return ActivationReLU, true
	case nn.Softplus:
		return ActivationSoftplus, true
	case nn.Sigmoid:
		return ActivationSigmoid, true
	case nn.Tanh:
		return ActivationTanh, true
	case nn.HardSigmoid:
		return ActivationHardSigmoid, true
	default:
		return 0, false
	}
}

// activationFromCode maps a wire tag back to an activation.
func activationFromCode(code uint32) (nn.Activation, bool) {
	switch code {
	case ActivationLinear:
		return nn.Linear, true
	case ActivationReLU:
		return nn.ReLU, true
	case ActivationSoftplus:
		return nn.Softplus, true
	case ActivationSigmoid:
		return nn.Sigmoid, true
	case ActivationTanh:
		return nn.Tanh, true
	case ActivationHardSigmoid:
		return nn.HardSigmoid, true
	default:
		return 0, false
	}
}
