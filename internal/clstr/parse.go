package clstr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A RecordError is a parse failure on a single sequence-record line. It
// carries the full offending line for diagnosis and, for numeric failures,
// wraps the underlying strconv error.
type RecordError struct {
	Reason string
	Line   string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v): %s", e.Reason, e.Err, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Line)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// A Parser reads clusters from .clstr encoded input, one ">Cluster" block at
// a time. It owns its input stream exclusively and never buffers more than
// the cluster currently being accumulated.
type Parser struct {
	scanner *bufio.Scanner
	current *Cluster // accumulating cluster, nil before the first header
	nextID  int
}

// NewParser returns a parser reading from r.
func NewParser(r io.Reader) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Parser{scanner: sc}
}

// Next returns the next cluster in the input, or io.EOF once the input is
// exhausted. Cluster IDs count up from 0 in discovery order. Lines before
// the first header are ignored; a malformed record line inside a cluster
// fails the parse and the parser should not be advanced again.
func (p *Parser) Next() (*Cluster, error) {
	for p.scanner.Scan() {
		line := p.scanner.Text()

		if strings.HasPrefix(line, ">") {
			done := p.current
			p.current = &Cluster{ID: p.nextID}
			p.nextID++
			if done != nil {
				return done, nil
			}
			continue
		}

		if p.current == nil {
			continue // stray content before the first header
		}

		seq, err := parseSequenceLine(line)
		if err != nil {
			return nil, err
		}
		p.current.Sequences = append(p.current.Sequences, seq)
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}

	// input exhausted, hand off the pending cluster if there is one
	if done := p.current; done != nil {
		p.current = nil
		return done, nil
	}
	return nil, io.EOF
}

// ReadAll drains the parser into a slice. Whole-file operations (sorting by
// size, the interactive browser) need every cluster up front; streaming
// callers should stick with Next.
func (p *Parser) ReadAll() ([]*Cluster, error) {
	var clusters []*Cluster
	for {
		c, err := p.Next()
		if err == io.EOF {
			return clusters, nil
		}
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, c)
	}
}

// parseSequenceLine parses one member line, e.g.
//
//	0    4481aa, >sp|P0C6T5|R1A_BCHK5... at 99.89%
//	3    7182aa, >sp|P0C6W4|R1AB_BCHK5... *
//
// The four fields are independent scans over the raw line, so each one
// reports its own failure with the line attached.
func parseSequenceLine(line string) (Sequence, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Sequence{}, &RecordError{Reason: "invalid sequence line", Line: line}
	}

	lengthText, found := strings.CutSuffix(fields[1], "aa,")
	if !found {
		return Sequence{}, &RecordError{Reason: "invalid length format", Line: line}
	}
	length, err := strconv.ParseUint(lengthText, 10, 32)
	if err != nil {
		return Sequence{}, &RecordError{Reason: "invalid length", Line: line, Err: err}
	}

	id, _, found := strings.Cut(strings.TrimPrefix(fields[2], ">"), "...")
	if !found || id == "" {
		return Sequence{}, &RecordError{Reason: "invalid ID format", Line: line}
	}

	seq := Sequence{
		Length:         int(length),
		ID:             id,
		Representative: strings.HasSuffix(line, "*"),
	}

	if _, after, found := strings.Cut(line, " at "); found {
		// A representative marker may trail the percentage; drop it so
		// the writer's own output stays parseable.
		text := strings.TrimSuffix(after, "*")
		text = strings.TrimRight(text, " \t")
		text = strings.TrimSuffix(text, "%")
		identity, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Sequence{}, &RecordError{Reason: "invalid identity", Line: line, Err: err}
		}
		seq.Identity = identity
		seq.HasIdentity = true
	}

	return seq, nil
}
