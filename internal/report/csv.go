package report

import (
	"encoding/csv"
	"io"
)

func writeCSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	rows, err := rowsOf(CSV, items)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if h, ok := any(items[0]).(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
