package nn

// Scaling is a min-max input scaler.
//
// It maps inputs from the observed data range [DataMin, DataMax] into the
// feature range [FeatureInf, FeatureSup]. All four values are scalars.
type Scaling struct {
	DataMin    float32
	DataMax    float32
	FeatureInf float32
	FeatureSup float32
}

// NewScaling creates a min-max scaling layer.
func NewScaling(dataMin, dataMax, featureInf, featureSup float32) *Scaling {
	return &Scaling{
		DataMin:    dataMin,
		DataMax:    dataMax,
		FeatureInf: featureInf,
		FeatureSup: featureSup,
	}
}

// Kind returns KindScaling.
func (s *Scaling) Kind() LayerKind {
	return KindScaling
}

// Unscaling is the inverse of Scaling: it maps outputs from the feature
// range back into the data range. Field shape is identical to Scaling.
type Unscaling struct {
	DataMin    float32
	DataMax    float32
	FeatureInf float32
	FeatureSup float32
}

// NewUnscaling creates a min-max unscaling layer.
func NewUnscaling(dataMin, dataMax, featureInf, featureSup float32) *Unscaling {
	return &Unscaling{
		DataMin:    dataMin,
		DataMax:    dataMax,
		FeatureInf: featureInf,
		FeatureSup: featureSup,
	}
}

// Kind returns KindUnscaling.
func (u *Unscaling) Kind() LayerKind {
	return KindUnscaling
}
