package loss

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLoss is returned by ByName for names that do not map to a loss.
var ErrUnknownLoss = errors.New("unknown loss")

// Canonical loss names, as persisted alongside trained models.
const (
	NameMSE                     = "mse"
	NameBinaryCrossEntropy      = "binary_crossentropy"
	NameCategoricalCrossEntropy = "categorical_crossentropy"
)

// Names lists the canonical names in a stable order.
var Names = []string{NameMSE, NameBinaryCrossEntropy, NameCategoricalCrossEntropy}

// ByName returns the loss registered under name. Matching ignores case,
// and "bce" and "cce" are accepted as short forms.
func ByName(name string) (Loss, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameMSE:
		return MSE{}, nil
	case NameBinaryCrossEntropy, "bce":
		return BCE{}, nil
	case NameCategoricalCrossEntropy, "cce":
		return CCE{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoss, name)
	}
}

// Name returns the canonical name of l, or "" for losses not defined here.
func Name(l Loss) string {
	switch l.(type) {
	case MSE, *MSE:
		return NameMSE
	case BCE, *BCE:
		return NameBinaryCrossEntropy
	case CCE, *CCE:
		return NameCategoricalCrossEntropy
	default:
		return ""
	}
}
