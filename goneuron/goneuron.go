package goneuron

import (
	"github.com/FlavioCFOliveira/GoNeuron-loss/internal/loss"
	"github.com/FlavioCFOliveira/GoNeuron-loss/internal/tensor"
)

// Re-export common types and functions for easier access
type (
	Tensor           = tensor.Tensor
	Shape            = tensor.Shape
	Loss             = loss.Loss
	BackwardInPlacer = loss.BackwardInPlacer
)

// Tensor creation
func NewTensor(shape Shape, data []float64) *Tensor {
	return tensor.New(shape, data)
}

func Vector(values ...float64) *Tensor {
	return tensor.Vector(values...)
}

func FromRows(rows [][]float64) *Tensor {
	return tensor.FromRows(rows)
}

func LoadPairCSV(filename string, trueCols []int, hasHeader bool) (yTrue, yPred *Tensor, err error) {
	return tensor.LoadPairCSV(filename, trueCols, hasHeader)
}

// Loss functions
var (
	MeanSquaredError                  = loss.MeanSquaredError
	MeanSquaredErrorDerivative        = loss.MeanSquaredErrorDerivative
	BinaryCrossEntropy                = loss.BinaryCrossEntropy
	BinaryCrossEntropyDerivative      = loss.BinaryCrossEntropyDerivative
	CategoricalCrossEntropy           = loss.CategoricalCrossEntropy
	CategoricalCrossEntropyDerivative = loss.CategoricalCrossEntropyDerivative
)

// Losses
var (
	MSE = loss.MSE{}
	BCE = loss.BCE{}
	CCE = loss.CCE{}
)

func LossByName(name string) (Loss, error) {
	return loss.ByName(name)
}
