package nn

// Activation identifies a fixed elementwise nonlinearity.
//
// The set is closed: the export format enumerates exactly these six and a
// model citing anything else cannot be serialized.
type Activation int

// Supported activations. The zero value is not a valid activation.
const (
	Linear Activation = iota + 1
	ReLU
	Softplus
	Sigmoid
	Tanh
	HardSigmoid
)

// Valid reports whether a is one of the supported activations.
func (a Activation) Valid() bool {
	return a >= Linear && a <= HardSigmoid
}

// String returns the framework-side activation name.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "linear"
	case ReLU:
		return "relu"
	case Softplus:
		return "softplus"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case HardSigmoid:
		return "hard_sigmoid"
	default:
		return "unknown"
	}
}

// ParseActivation maps a framework-side activation name to its enum value.
// The second result is false for names outside the supported set.
func ParseActivation(name string) (Activation, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "relu":
		return ReLU, true
	case "softplus":
		return Softplus, true
	case "sigmoid":
		return Sigmoid, true
	case "tanh":
		return Tanh, true
	case "hard_sigmoid":
		return HardSigmoid, true
	default:
		return 0, false
	}
}

// ActivationLayer is a standalone nonlinearity applied to the current tensor.
type ActivationLayer struct {
	Activation Activation
}

// NewActivationLayer creates a standalone activation layer.
func NewActivationLayer(activation Activation) *ActivationLayer {
	return &ActivationLayer{Activation: activation}
}

// Kind returns KindActivation.
func (l *ActivationLayer) Kind() LayerKind {
	return KindActivation
}
