package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Noofbiz/randwalk/walk"
)

// WriteCSV writes a 1D distribution as value,count rows with a header.
func WriteCSV(w io.Writer, values, heights []int) error {
	if len(values) != len(heights) {
		return fmt.Errorf("render: values/heights length mismatch: %d vs %d", len(values), len(heights))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"value", "count"}); err != nil {
		return err
	}
	for i := range values {
		row := []string{strconv.Itoa(values[i]), strconv.Itoa(heights[i])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV2D writes a 2D distribution as x,y,count rows with a header, in
// the distribution's lexicographic key order.
func WriteCSV2D(w io.Writer, dist *walk.Distribution2D) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "count"}); err != nil {
		return err
	}
	keys := dist.Keys()
	counts := dist.Counts()
	for i, k := range keys {
		row := []string{strconv.Itoa(k.X), strconv.Itoa(k.Y), strconv.Itoa(counts[i])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
