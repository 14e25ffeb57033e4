package report

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	rows, err := rowsOf(TSV, items)
	if err != nil {
		return err
	}
	if h, ok := any(items[0]).(Headed); ok {
		rows = append([][]string{h.Header()}, rows...)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
