package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Save writes X to path in gonum's binary matrix encoding.
//
// Errors: ErrEmpty for an empty X; file system errors are wrapped.
func Save(path string, X *mat.Dense) (err error) {
	if X == nil || X.IsEmpty() {
		return fmt.Errorf("dataset.Save: %w", ErrEmpty)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset.Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset.Save: %w", cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if _, err = X.MarshalBinaryTo(w); err != nil {
		return fmt.Errorf("dataset.Save: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("dataset.Save: %w", err)
	}

	return nil
}

// Load reads a matrix written by Save.
//
// Errors: ErrFormat for corrupt or truncated files; file system errors are wrapped.
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}
	defer f.Close()

	var X mat.Dense
	if _, err = X.UnmarshalBinaryFrom(bufio.NewReader(f)); err != nil {
		return nil, fmt.Errorf("dataset.Load: %s: %w: %w", path, ErrFormat, err)
	}
	return &X, nil
}

// SaveCSV writes X to path as CSV (see WriteCSV).
func SaveCSV(path string, X mat.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset.SaveCSV: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset.SaveCSV: %w", cerr)
		}
	}()
	return WriteCSV(f, X)
}

// LoadCSV reads a matrix from a CSV file (see ReadCSV).
func LoadCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.LoadCSV: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes one record per row of X, values in shortest
// round-trippable form, no header.
//
// Errors: ErrEmpty for a nil or empty X; writer errors are wrapped.
func WriteCSV(w io.Writer, X mat.Matrix) error {
	r, c, err := dims(X)
	if err != nil {
		return fmt.Errorf("dataset.WriteCSV: %w", err)
	}
	cw := csv.NewWriter(w)
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := range rec {
			rec[j] = strconv.FormatFloat(X.At(i, j), 'g', -1, 64)
		}
		if err = cw.Write(rec); err != nil {
			return fmt.Errorf("dataset.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("dataset.WriteCSV: %w", err)
	}
	return nil
}

// ReadCSV parses records of equal length into a matrix.
//
// Errors: ErrEmpty for no records; ErrFormat for ragged records or
// unparsable numbers.
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	var data []float64
	cols, rows := -1, 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset.ReadCSV: %w: %w", ErrFormat, err)
		}
		if cols < 0 {
			cols = len(rec)
		}
		for j, field := range rec {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("dataset.ReadCSV: row %d col %d: %w: %w", rows, j, ErrFormat, perr)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("dataset.ReadCSV: %w", ErrEmpty)
	}

	return mat.NewDense(rows, cols, data), nil
}
