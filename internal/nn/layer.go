// Package nn defines the closed set of feed-forward layer kinds the ffnet
// export format can represent, and the ordered Model that contains them.
//
// Layers are passive descriptors: they hold the fields the binary format
// needs and nothing else. Evaluating a model is the consumer runtime's job.
package nn

// LayerKind discriminates the closed set of layer variants.
type LayerKind int

// Supported layer kinds.
const (
	KindScaling LayerKind = iota
	KindUnscaling
	KindDense
	KindActivation
)

// String returns a human-readable kind name.
func (k LayerKind) String() string {
	switch k {
	case KindScaling:
		return "Scaling"
	case KindUnscaling:
		return "Unscaling"
	case KindDense:
		return "Dense"
	case KindActivation:
		return "Activation"
	default:
		return "Unknown"
	}
}

// Layer is one stage of a feed-forward model.
//
// The concrete types are *Scaling, *Unscaling, *Dense and *ActivationLayer;
// anything else is rejected at export time.
type Layer interface {
	Kind() LayerKind
}

// Model is an ordered sequence of layers.
//
// Order is semantically significant: it is the evaluation order the consumer
// runtime replays, and it is preserved exactly in the exported file.
type Model struct {
	layers []Layer
}

// NewModel creates a model from the given layers, in order.
func NewModel(layers ...Layer) *Model {
	return &Model{layers: layers}
}

// Add appends a layer to the end of the model.
func (m *Model) Add(layer Layer) *Model {
	m.layers = append(m.layers, layer)
	return m
}

// Len returns the number of layers.
func (m *Model) Len() int {
	return len(m.layers)
}

// Layers returns the layer sequence in model order.
func (m *Model) Layers() []Layer {
	return m.layers
}
