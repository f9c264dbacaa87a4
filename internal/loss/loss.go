// Package loss provides loss functions and their derivatives with respect to predictions.
//
// Every function takes the ground truth first and the prediction second. Inputs are
// never modified; derivatives are returned as newly allocated tensors with the shape
// of yTrue.
//
// Only the categorical cross-entropy pair clamps its predictions. Mean squared error and
// binary cross-entropy trust the caller to keep predictions in range and produce NaN or
// Inf otherwise.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/GoNeuron-loss/internal/tensor"
)

// ClipEpsilon bounds categorical predictions to [ClipEpsilon, 1-ClipEpsilon].
const ClipEpsilon = 1e-15

// BackwardInPlacer is an optional interface for loss functions that support
// in-place gradient computation to avoid allocations.
type BackwardInPlacer interface {
	BackwardInPlace(yTrue, yPred, grad *tensor.Tensor)
}

// Loss is a loss function with derivative.
type Loss interface {
	// Forward computes the loss between true and predicted values.
	Forward(yTrue, yPred *tensor.Tensor) float64

	// Backward computes the gradient of the loss w.r.t. prediction.
	// This creates a new tensor and should be avoided in hot loops.
	Backward(yTrue, yPred *tensor.Tensor) *tensor.Tensor
}

// checkSize panics when the element counts differ, the way a mismatched
// elementwise operation fails at the array layer.
func checkSize(name string, yTrue, yPred *tensor.Tensor) int {
	n := yTrue.Size()
	if n != yPred.Size() {
		panic(name + ": prediction and target must have same length")
	}
	return n
}

func checkGrad(name string, n int, grad *tensor.Tensor) []float64 {
	if grad.Size() != n {
		panic(name + ": slices must have same length")
	}
	return grad.Data()
}

// Clip returns a copy of t with every element clamped to [ClipEpsilon, 1-ClipEpsilon].
// NaN stays NaN.
func Clip(t *tensor.Tensor) *tensor.Tensor {
	out := t.Clone()
	clipTo(out.Data(), t.Data())
	return out
}

func clipTo(dst, src []float64) {
	for i, v := range src {
		dst[i] = math.Min(math.Max(v, ClipEpsilon), 1-ClipEpsilon)
	}
}

// MeanSquaredError computes (1/n) * sum((y_true - y_pred)^2) over every element.
func MeanSquaredError(yTrue, yPred *tensor.Tensor) float64 {
	n := checkSize("MSE", yTrue, yPred)

	diff := make([]float64, n)
	floats.SubTo(diff, yTrue.Data(), yPred.Data())
	return floats.Dot(diff, diff) / float64(n)
}

// MeanSquaredErrorDerivative computes 2 * (y_pred - y_true) / n,
// where n is the total element count of yTrue.
func MeanSquaredErrorDerivative(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	grad := tensor.ZerosLike(yTrue)
	mseBackward(yTrue, yPred, grad.Data())
	return grad
}

func mseBackward(yTrue, yPred *tensor.Tensor, grad []float64) {
	n := checkSize("MSE", yTrue, yPred)

	floats.SubTo(grad, yPred.Data(), yTrue.Data())
	floats.Scale(2.0/float64(n), grad)
}

// BinaryCrossEntropy computes mean(-y*log(p) - (1-y)*log(1-p)).
// Predictions are not clipped: p must lie strictly inside (0, 1).
func BinaryCrossEntropy(yTrue, yPred *tensor.Tensor) float64 {
	n := checkSize("BCE", yTrue, yPred)

	t, p := yTrue.Data(), yPred.Data()
	terms := make([]float64, n)
	for i := range terms {
		terms[i] = -t[i]*math.Log(p[i]) - (1-t[i])*math.Log(1-p[i])
	}
	return floats.Sum(terms) / float64(n)
}

// BinaryCrossEntropyDerivative computes ((1-y)/(1-p) - y/p) / n.
// Like the forward pass it does not clip.
func BinaryCrossEntropyDerivative(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	grad := tensor.ZerosLike(yTrue)
	bceBackward(yTrue, yPred, grad.Data())
	return grad
}

func bceBackward(yTrue, yPred *tensor.Tensor, grad []float64) {
	n := checkSize("BCE", yTrue, yPred)

	t, p := yTrue.Data(), yPred.Data()
	for i := range grad {
		grad[i] = ((1-t[i])/(1-p[i]) - t[i]/p[i]) / float64(n)
	}
}

// CategoricalCrossEntropy computes -sum(y * log(clip(p))) / batch, where batch is
// the first dimension of yTrue.
func CategoricalCrossEntropy(yTrue, yPred *tensor.Tensor) float64 {
	n := checkSize("CategoricalCrossEntropy", yTrue, yPred)

	logs := make([]float64, n)
	clipTo(logs, yPred.Data())
	for i, v := range logs {
		logs[i] = math.Log(v)
	}
	return -floats.Dot(yTrue.Data(), logs) / float64(yTrue.BatchSize())
}

// CategoricalCrossEntropyDerivative computes -y / clip(p).
// The result is not divided by the batch size.
func CategoricalCrossEntropyDerivative(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	grad := tensor.ZerosLike(yTrue)
	cceBackward(yTrue, yPred, grad.Data())
	return grad
}

func cceBackward(yTrue, yPred *tensor.Tensor, grad []float64) {
	checkSize("CategoricalCrossEntropy", yTrue, yPred)

	clipTo(grad, yPred.Data())
	t := yTrue.Data()
	for i, p := range grad {
		grad[i] = -t[i] / p
	}
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error.
func (MSE) Forward(yTrue, yPred *tensor.Tensor) float64 {
	return MeanSquaredError(yTrue, yPred)
}

// Backward computes gradient: dL/dy_pred = (2/n) * (y_pred - y_true)
func (MSE) Backward(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	return MeanSquaredErrorDerivative(yTrue, yPred)
}

// BackwardInPlace computes gradient and stores it in grad.
// This avoids allocation when grad is pre-allocated.
func (MSE) BackwardInPlace(yTrue, yPred, grad *tensor.Tensor) {
	mseBackward(yTrue, yPred, checkGrad("MSE", yTrue.Size(), grad))
}

// BCE (Binary Cross Entropy) loss.
// Requires predictions to be in range (0, 1).
type BCE struct{}

// Forward computes binary cross entropy.
func (BCE) Forward(yTrue, yPred *tensor.Tensor) float64 {
	return BinaryCrossEntropy(yTrue, yPred)
}

// Backward computes gradient for BCE loss.
func (BCE) Backward(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	return BinaryCrossEntropyDerivative(yTrue, yPred)
}

// BackwardInPlace computes gradient and stores it in grad.
func (BCE) BackwardInPlace(yTrue, yPred, grad *tensor.Tensor) {
	bceBackward(yTrue, yPred, checkGrad("BCE", yTrue.Size(), grad))
}

// CCE (Categorical Cross Entropy) loss, usually paired with a softmax output.
type CCE struct{}

// Forward computes categorical cross entropy averaged over the batch axis.
func (CCE) Forward(yTrue, yPred *tensor.Tensor) float64 {
	return CategoricalCrossEntropy(yTrue, yPred)
}

// Backward computes -y / clip(p).
func (CCE) Backward(yTrue, yPred *tensor.Tensor) *tensor.Tensor {
	return CategoricalCrossEntropyDerivative(yTrue, yPred)
}

// BackwardInPlace computes gradient and stores it in grad.
func (CCE) BackwardInPlace(yTrue, yPred, grad *tensor.Tensor) {
	cceBackward(yTrue, yPred, checkGrad("CategoricalCrossEntropy", yTrue.Size(), grad))
}
