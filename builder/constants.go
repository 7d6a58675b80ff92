// Package builder defines shared constants used by network builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildCOO is the canonical name for the BuildCOO orchestrator.
	MethodBuildCOO = "BuildCOO"
	// MethodLayered is the canonical name for the Layered constructor.
	MethodLayered = "Layered"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodBiases is the canonical name for the Biases helper.
	MethodBiases = "Biases"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinLayers is the minimum number of hidden layers for Layered.
	MinLayers = 1
	// MinPerLayer is the minimum hidden layer width for Layered.
	MinPerLayer = 1
	// MinRandomDim is the minimum rows/cols for Random.
	MinRandomDim = 1
)
