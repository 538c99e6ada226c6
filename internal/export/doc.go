// Package export implements the ffnet binary model format: a compact
// streaming encoding of feed-forward models (scaling, dense and activation
// layers) for consumption by a minimal numeric runtime.
//
//	Format structure (all fields 4 bytes, little-endian):
//	  [u32: layer count]
//	  repeated per layer:
//	    [u32: layer type tag]   1=Scaling 2=Unscaling 3=Dense 4=Activation
//	    Scaling/Unscaling: [f32 data_min] [f32 data_max] [f32 feature_inf] [f32 feature_sup]
//	    Dense:             [u32 input_dim] [u32 output_dim] [u32 bias_len]
//	                       [f32 x input_dim*output_dim weights, row-major]
//	                       [f32 x output_dim biases]
//	                       [u32 activation tag]   1..6
//	    Activation:        [u32 activation tag]
//
// Little-endian is the format contract: the file carries no byte-order
// marker, no magic and no version field, so the first u32 of any model file
// is its layer count.
//
// Float payloads are streamed in chunks of 1024 elements, bounding peak
// encoding memory to one chunk regardless of tensor size. Chunking never
// changes the bytes produced.
//
// Example usage:
//
//	model := nn.NewModel(
//	    nn.NewScaling(0, 1, 0, 1),
//	    dense,
//	    nn.NewActivationLayer(nn.Sigmoid),
//	)
//	if err := export.Export(model, "model.ffnet"); err != nil {
//	    log.Fatal(err)
//	}
package export
