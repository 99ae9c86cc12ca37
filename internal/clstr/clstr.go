// Package clstr parses and writes the .clstr clustering-report format
// produced by CD-HIT. Only tested against CD-HIT, not CD-HIT-EST.
package clstr

// A Sequence is a single member record within a cluster.
type Sequence struct {
	// Length is the amino-acid count reported for the sequence.
	Length int

	// ID is the sequence accession, free of the '>' marker and the
	// trailing '...' delimiter.
	ID string

	// Identity is the %-identity to the cluster's representative. It is
	// only meaningful when HasIdentity is true; the representative itself
	// reports none.
	Identity    float64
	HasIdentity bool

	// Representative marks the member chosen as the cluster's
	// representative (the line ending in '*').
	Representative bool
}

// A Cluster is one ">Cluster" block: an ordered group of member sequences.
// IDs are assigned by discovery order starting at 0; the numeral printed in
// the header line itself is informational only and is never parsed.
type Cluster struct {
	ID        int
	Sequences []Sequence
}

// Size returns the number of member sequences.
func (c *Cluster) Size() int {
	return len(c.Sequences)
}

// Representative returns the member flagged as the cluster's representative.
// Well-formed files have exactly one per cluster, but the parser does not
// enforce that, so callers must handle the miss.
func (c *Cluster) Representative() (Sequence, bool) {
	for _, s := range c.Sequences {
		if s.Representative {
			return s, true
		}
	}
	return Sequence{}, false
}

// SequenceSource looks up a member's database record by sequence ID.
// Misses are expected: the report may have been clustered against a
// different database revision than the one being queried.
type SequenceSource interface {
	Lookup(id string) (description, sequence string, ok bool)
}
