package clstr

import (
	"bytes"
	"strings"
	"testing"
)

// stubSource is an in-memory SequenceSource: id -> {description, sequence}.
type stubSource map[string][2]string

func (s stubSource) Lookup(id string) (string, string, bool) {
	rec, ok := s[id]
	return rec[0], rec[1], ok
}

func TestWithExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{"replaces .clstr", "input.clstr", "top500.clstr", "input.top500.clstr"},
		{"no extension", "input", "more_than_20.clstr", "input.more_than_20.clstr"},
		{"keeps directories", "out/run1.clstr", "Spike_protein.fasta", "out/run1.Spike_protein.fasta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withExtension(tt.path, tt.ext); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClusterFileName(t *testing.T) {
	src := stubSource{
		"seqB": {"dopamine receptor D4/variant 2", "ATGC"},
	}

	tests := []struct {
		name    string
		cluster *Cluster
		want    string
	}{
		{
			"description with spaces and slashes",
			&Cluster{Sequences: []Sequence{{ID: "seqB", Representative: true}}},
			"dopamine_receptor_D4_variant_2",
		},
		{
			"representative missing from database",
			&Cluster{Sequences: []Sequence{{ID: "unknown", Representative: true}}},
			"no-description",
		},
		{
			"no representative at all",
			&Cluster{Sequences: []Sequence{{ID: "seqB"}}},
			"No representative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clusterFileName(tt.cluster, src); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteClusterFasta(t *testing.T) {
	src := stubSource{
		"seqA": {"first record", "ATGCATGC"},
		"seqC": {"", "GGTT"},
	}
	c := &Cluster{
		Sequences: []Sequence{
			{ID: "seqA", Representative: true},
			{ID: "seqMissing"}, // skipped with a warning, not an error
			{ID: "seqC"},
		},
	}

	var buf bytes.Buffer
	if err := writeClusterFasta(c, src, &buf); err != nil {
		t.Fatal(err)
	}

	want := ">seqA first record\nATGCATGC\n>seqC\nGGTT\n"
	if got := buf.String(); got != want {
		t.Errorf("output: got %q, want %q", got, want)
	}
	if strings.Contains(buf.String(), "seqMissing") {
		t.Error("missing sequence should have been skipped")
	}
}
