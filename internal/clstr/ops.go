package clstr

import (
	"fmt"
	"io"
	"sort"
)

// TopN returns the n largest clusters by member count, largest first. Ties
// keep their original file order. The input slice is not modified.
func TopN(clusters []*Cluster, n int) []*Cluster {
	sorted := make([]*Cluster, len(clusters))
	copy(sorted, clusters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size() > sorted[j].Size()
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// FilterSize streams clusters from p to w, keeping those with at least min
// members. Unlike TopN this never holds more than one cluster in memory.
func FilterSize(p *Parser, w *Writer, min int) error {
	for {
		c, err := p.Next()
		if err == io.EOF {
			return w.Flush()
		}
		if err != nil {
			return err
		}
		if c.Size() >= min {
			if err := w.Write(c); err != nil {
				return err
			}
		}
	}
}

// Stats drains p and writes a small TSV of cluster count, sequence count and
// mean sequences per cluster to w. With table set it instead writes one
// "id<TAB>size" row per cluster as they stream by.
func Stats(p *Parser, w io.Writer, table bool) error {
	if table {
		for {
			c, err := p.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%d\t%d\n", c.ID, c.Size()); err != nil {
				return err
			}
		}
	}

	clusterCount := 0
	sequenceCount := 0
	for {
		c, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		clusterCount++
		sequenceCount += c.Size()
	}

	avg := float64(sequenceCount) / float64(clusterCount)
	if _, err := fmt.Fprintln(w, "Cluster count\tSequence count\tAvg seqs per cluster"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d\t%d\t%g\n", clusterCount, sequenceCount, avg)
	return err
}
