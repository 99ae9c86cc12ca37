package clstr

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ARU-life-sciences/clstr/config"
	"github.com/ARU-life-sciences/clstr/internal/fasta"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.New(os.Stderr)

// StatsCmd reports summary statistics for a .clstr file to stdout.
func StatsCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		logger.Fatal("no .clstr file passed")
	}

	in, err := os.Open(args[0])
	if err != nil {
		logger.Fatal(err)
	}
	defer in.Close()

	table, _ := cmd.Flags().GetBool("table")
	if err := Stats(NewParser(in), os.Stdout, table); err != nil {
		logger.Fatal(err)
	}
}

// TopNCmd collects every cluster, sorts them by size and writes the largest
// N to a sibling of the input file.
func TopNCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		logger.Fatal("no .clstr file passed")
	}
	conf := config.New()

	in, err := os.Open(args[0])
	if err != nil {
		logger.Fatal(err)
	}
	defer in.Close()

	clusters, err := NewParser(in).ReadAll()
	if err != nil {
		logger.Fatal(err)
	}
	top := TopN(clusters, conf.TopN)

	outPath := withExtension(args[0], fmt.Sprintf("top%d.clstr", conf.TopN))
	out, err := os.Create(outPath)
	if err != nil {
		logger.Fatal(err)
	}
	defer out.Close()

	w := NewWriter(out)
	for _, c := range top {
		if err := w.Write(c); err != nil {
			logger.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		logger.Fatal(err)
	}

	logger.Info("wrote clusters", "count", len(top), "file", outPath)
}

// FilterNCmd streams the input, writing clusters with at least N members to
// a sibling of the input file.
func FilterNCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		logger.Fatal("no .clstr file passed")
	}
	conf := config.New()

	in, err := os.Open(args[0])
	if err != nil {
		logger.Fatal(err)
	}
	defer in.Close()

	outPath := withExtension(args[0], fmt.Sprintf("more_than_%d.clstr", conf.FilterMin))
	out, err := os.Create(outPath)
	if err != nil {
		logger.Fatal(err)
	}
	defer out.Close()

	if err := FilterSize(NewParser(in), NewWriter(out), conf.FilterMin); err != nil {
		logger.Fatal(err)
	}
}

// ToFastaCmd writes one FASTA file per cluster, pulling each member's
// description and sequence out of the database the report was built from.
func ToFastaCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		cmd.Help()
		logger.Fatal("need a .clstr file and its FASTA database")
	}

	// the whole database is held in memory so members can be looked up in
	// cluster order rather than database order
	db, err := fasta.LoadDatabase(args[1])
	if err != nil {
		logger.Fatal(err)
	}

	in, err := os.Open(args[0])
	if err != nil {
		logger.Fatal(err)
	}
	defer in.Close()

	p := NewParser(in)
	for {
		c, err := p.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			logger.Fatal(err)
		}

		outPath := withExtension(args[0], clusterFileName(c, db)+".fasta")
		out, err := os.Create(outPath)
		if err != nil {
			logger.Fatal(err)
		}
		if err := writeClusterFasta(c, db, out); err != nil {
			out.Close()
			logger.Fatal(err)
		}
		if err := out.Close(); err != nil {
			logger.Fatal(err)
		}
	}
}

// clusterFileName names a cluster's FASTA output after the database
// description of its representative.
func clusterFileName(c *Cluster, src SequenceSource) string {
	rep, ok := c.Representative()
	if !ok {
		return "No representative"
	}
	desc, _, ok := src.Lookup(rep.ID)
	if !ok {
		desc = "no-description"
	}
	return strings.NewReplacer(" ", "_", "/", "_").Replace(desc)
}

// writeClusterFasta writes each member's database record to w. Members
// missing from the database are warned about and skipped, not fatal.
func writeClusterFasta(c *Cluster, src SequenceSource, w io.Writer) error {
	for _, s := range c.Sequences {
		desc, seq, ok := src.Lookup(s.ID)
		if !ok {
			logger.Warn("sequence not found in FASTA database", "id", s.ID)
			continue
		}
		if err := fasta.WriteRecord(w, s.ID, desc, seq); err != nil {
			return err
		}
	}
	return nil
}

// withExtension swaps the path's extension, mirroring the output naming of
// the original helper scripts (input.clstr -> input.top500.clstr).
func withExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
