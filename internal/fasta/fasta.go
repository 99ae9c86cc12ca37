// Package fasta reads the sequence database a .clstr report was built from
// and exposes it as an id -> record lookup.
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// A Record is one database entry: the free-text description from the header
// and the raw sequence with line breaks removed.
type Record struct {
	Description string
	Sequence    string
}

// A Database maps sequence IDs to their records. No ordering is kept; the
// report supplies the order.
type Database map[string]Record

// Lookup returns the description and sequence for id.
func (db Database) Lookup(id string) (description, sequence string, ok bool) {
	rec, ok := db[id]
	return rec.Description, rec.Sequence, ok
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading, transparently decompressing gzip input.
// Compression is detected by the gzip magic number (1F 8B) or a .gz suffix;
// "-" reads from stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ReadDatabase scans FASTA records from r into a Database. The first
// whitespace-delimited token of a header is the ID, the remainder the
// description. Sequence lines are concatenated.
func ReadDatabase(r io.Reader) (Database, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024) // single-line sequences can be huge

	db := Database{}
	var id, desc string
	var seq strings.Builder

	flush := func() {
		if id != "" {
			db[id] = Record{Description: desc, Sequence: seq.String()}
		}
		seq.Reset()
	}

	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			header := strings.TrimSpace(line[1:])
			if i := strings.IndexAny(header, " \t"); i >= 0 {
				id, desc = header[:i], strings.TrimSpace(header[i+1:])
			} else {
				id, desc = header, ""
			}
			continue
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return db, nil
}

// LoadDatabase reads the database at path, gzipped or not.
func LoadDatabase(path string) (Database, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadDatabase(r)
}
