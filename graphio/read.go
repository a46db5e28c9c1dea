package graphio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/misp/graph"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Read parses one graph from r.
func Read(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		b      *graph.Builder
		lineNo int
		line   string
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// 1) Header.
		if b == nil {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, errors.Wrapf(ErrMalformedHeader, "line %d: %q", lineNo, line)
			}
			b, _ = graph.NewBuilder(n) // n >= 0 here
			continue
		}

		// 2) Edge.
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Wrapf(ErrMalformedEdge, "line %d: want 2 fields, got %d", lineNo, len(fields))
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, errors.Wrapf(ErrMalformedEdge, "line %d: %q", lineNo, line)
		}
		if err := b.AddEdge(u, v); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "graphio: read after line %d", lineNo)
	}
	if b == nil {
		return nil, errors.Wrap(ErrMalformedHeader, "empty input")
	}

	return b.Build(), nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open %s", path)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: %s", path)
	}

	return g, nil
}
