package freq

import (
	"fmt"
	"io"
)

// Print writes the frequency report to w: a right-aligned total-items line,
// a unique-items line, a blank line, then one data line per Frequency in the
// order given.
func Print(freqs []Frequency, w io.Writer) error {
	total := 0
	for _, f := range freqs {
		total += f.Count
	}

	if _, err := fmt.Fprintf(w, "%6d total items\n", total); err != nil {
		return fmt.Errorf("print header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%6d unique items\n\n", len(freqs)); err != nil {
		return fmt.Errorf("print header: %w", err)
	}
	for _, f := range freqs {
		if _, err := fmt.Fprintf(w, "%6d %s\n", f.Count, tokenString(f.Token)); err != nil {
			return fmt.Errorf("print frequency: %w", err)
		}
	}
	return nil
}
