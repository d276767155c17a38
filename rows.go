package tabulator

import "iter"

// WriteRow writes one value per column and completes the row. Missing
// trailing values render as empty columns; extra values spill into the next
// row. Calling with no values emits a blank row.
func (t *Tabulator) WriteRow(values ...string) error {
	if len(values) == 0 {
		// A row with no buffered content makes no flush progress; an
		// explicit newline in the first column renders one padded line
		// per cell.
		if _, err := t.WriteString("\n"); err != nil {
			return err
		}
		for range t.cells {
			if err := t.EndColumn(); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range values {
		if _, err := t.WriteString(v); err != nil {
			return err
		}
		if err := t.EndColumn(); err != nil {
			return err
		}
	}
	for t.column != 0 {
		if err := t.EndColumn(); err != nil {
			return err
		}
	}
	return nil
}

// WriteRows writes rows from an iterator as they arrive, one table row per
// yielded slice.
func (t *Tabulator) WriteRows(rows iter.Seq[[]string]) error {
	var streamErr error
	rows(func(row []string) bool {
		if err := t.WriteRow(row...); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteRowChan writes rows from a channel. It is a thin wrapper around
// [WriteRows].
func (t *Tabulator) WriteRowChan(ch <-chan []string) error {
	return t.WriteRows(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
