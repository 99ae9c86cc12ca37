package fasta

import (
	"fmt"
	"io"
)

// WriteRecord writes one FASTA record to w with the sequence wrapped at 60
// columns.
func WriteRecord(w io.Writer, id, description, sequence string) error {
	header := id
	if description != "" {
		header += " " + description
	}
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	for start := 0; start < len(sequence); start += 60 {
		end := start + 60
		if end > len(sequence) {
			end = len(sequence)
		}
		if _, err := fmt.Fprintln(w, sequence[start:end]); err != nil {
			return err
		}
	}
	return nil
}
