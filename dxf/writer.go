package dxf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paulmach/orb"

	"dxfmend/geom"
)

// WriteFile writes the reconstructed paths to a DXF file at path.
func WriteFile(path string, closed, open []geom.Path) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer f.Close()

	if err := Write(f, closed, open); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Write emits a minimal DXF document: each closed path becomes one closed
// LWPOLYLINE (the trailing repeat of the first point is dropped, the closed
// flag replaces it), each open path becomes one LINE per consecutive vertex
// pair.
func Write(w io.Writer, closed, open []geom.Path) error {
	bw := bufio.NewWriter(w)
	dw := &docWriter{w: bw}

	dw.tag(0, "SECTION")
	dw.tag(2, "ENTITIES")

	for _, path := range closed {
		vertices := path
		if path.Closed() {
			vertices = path[:len(path)-1]
		}
		dw.tag(0, "LWPOLYLINE")
		dw.tag(8, "0")
		dw.tag(90, strconv.Itoa(len(vertices)))
		dw.tag(70, "1")
		for _, p := range vertices {
			dw.point(10, 20, p)
		}
	}

	for _, path := range open {
		for i := 0; i+1 < len(path); i++ {
			dw.tag(0, "LINE")
			dw.tag(8, "0")
			dw.point(10, 20, path[i])
			dw.point(11, 21, path[i+1])
		}
	}

	dw.tag(0, "ENDSEC")
	dw.tag(0, "EOF")

	if dw.err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, dw.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// docWriter emits group-code/value pairs, remembering the first error.
type docWriter struct {
	w   io.Writer
	err error
}

func (d *docWriter) tag(code int, value string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%d\n%s\n", code, value)
}

func (d *docWriter) point(xCode, yCode int, p orb.Point) {
	d.tag(xCode, strconv.FormatFloat(p[0], 'f', -1, 64))
	d.tag(yCode, strconv.FormatFloat(p[1], 'f', -1, 64))
}
