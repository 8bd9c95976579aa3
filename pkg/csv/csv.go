package csv

import (
	"bytes"
	"encoding/csv"
)

type Record interface {
	Row() []string
}

type FilterFunc[T Record] func(T) bool

// Create renders records as CSV under header, keeping only those that pass filter.
func Create[T Record](header []string, records []T, filter FilterFunc[T]) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		if filter == nil || filter(r) {
			if err := w.Write(r.Row()); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
