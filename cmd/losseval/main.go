// Command losseval reports every loss and its gradient for paired
// ground-truth and prediction columns stored in a CSV file.
//
// Usage:
//
//	losseval -file preds.csv -true-cols 0,1 -header
//	losseval -file preds.csv -true-cols 2 -loss binary_crossentropy -grad
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/FlavioCFOliveira/GoNeuron-loss/internal/loss"
	"github.com/FlavioCFOliveira/GoNeuron-loss/internal/tensor"
)

var (
	inputFile = flag.String("file", "", "CSV file with target and prediction columns (required)")
	trueCols  = flag.String("true-cols", "0", "Comma-separated indices of the ground truth columns")
	hasHeader = flag.Bool("header", false, "Skip the first CSV line")
	lossName  = flag.String("loss", "", "Evaluate a single loss ("+strings.Join(loss.Names, ", ")+"); default all")
	withGrad  = flag.Bool("grad", false, "Also print the gradient w.r.t. predictions")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -file flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	cols, err := parseCols(*trueCols)
	if err != nil {
		log.Fatalf("Invalid -true-cols: %v", err)
	}

	names := loss.Names
	if *lossName != "" {
		names = []string{*lossName}
	}

	yTrue, yPred, err := tensor.LoadPairCSV(*inputFile, cols, *hasHeader)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *inputFile, err)
	}

	if err := evaluate(os.Stdout, yTrue, yPred, names, *withGrad); err != nil {
		log.Fatal(err)
	}
}

// parseCols parses a comma-separated list of non-negative column indices.
func parseCols(s string) ([]int, error) {
	var cols []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		col, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", field, err)
		}
		if col < 0 {
			return nil, fmt.Errorf("column %d is negative", col)
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns given")
	}
	return cols, nil
}

// evaluate writes one line per loss and, when withGrad is set, one line per
// gradient row.
func evaluate(w io.Writer, yTrue, yPred *tensor.Tensor, names []string, withGrad bool) error {
	fmt.Fprintf(w, "Samples: %d, width: %d\n", yTrue.BatchSize(), yTrue.Size()/max(yTrue.BatchSize(), 1))

	for _, name := range names {
		l, err := loss.ByName(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%-26s %.6f\n", loss.Name(l), l.Forward(yTrue, yPred))
		if !withGrad {
			continue
		}

		grad := l.Backward(yTrue, yPred)
		rows := grad.BatchSize()
		width := grad.Size() / max(rows, 1)
		data := grad.Data()
		for i := 0; i < rows; i++ {
			fmt.Fprintf(w, "  grad[%d] %v\n", i, data[i*width:(i+1)*width])
		}
	}
	return nil
}
