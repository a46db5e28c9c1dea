package graphio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/misp/graph"
)

// Write emits g in the edge-list format, one edge per line as reported by
// g.Edges(). Reading the output back yields a graph with the same order
// and the same Edges(); adjacency lists may come back in a different order.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(g.Order()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "graphio: write header")
	}
	for _, e := range g.Edges() {
		buf = strconv.AppendInt(buf[:0], int64(e.U), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "graphio: write edge %d-%d", e.U, e.V)
		}
	}

	return errors.Wrap(bw.Flush(), "graphio: flush")
}

// WriteFile creates or truncates path and writes g to it.
func WriteFile(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "graphio: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "graphio: close %s", path)
		}
	}()

	return Write(f, g)
}
