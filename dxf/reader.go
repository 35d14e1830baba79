package dxf

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"dxfmend/geom"
)

// tag is one group-code/value pair from the DXF tag stream.
type tag struct {
	code  int
	value string
}

// tagReader scans a DXF file two lines at a time.
type tagReader struct {
	scanner *bufio.Scanner
	line    int
}

func newTagReader(r io.Reader) *tagReader {
	return &tagReader{scanner: bufio.NewScanner(r)}
}

// next returns the next tag, or io.EOF at end of stream.
func (t *tagReader) next() (tag, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return tag{}, err
		}
		return tag{}, io.EOF
	}
	t.line++
	codeStr := strings.TrimSpace(t.scanner.Text())

	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return tag{}, err
		}
		return tag{}, fmt.Errorf("line %d: group code %q without value", t.line, codeStr)
	}
	t.line++
	value := strings.TrimSpace(t.scanner.Text())

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return tag{}, fmt.Errorf("line %d: bad group code %q", t.line-1, codeStr)
	}
	return tag{code: code, value: value}, nil
}

// ReadFile parses the drawing at path into primitive records.
func ReadFile(path string) ([]geom.Primitive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses the ENTITIES section of a DXF tag stream into primitive
// records. Entity kinds outside the supported subset are skipped and counted;
// skipping is deliberate policy, not an error.
func Read(r io.Reader) ([]geom.Primitive, error) {
	tags := newTagReader(r)
	p := &parser{}

	inEntities := false
	for {
		tg, err := tags.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}

		if tg.code == 0 {
			switch tg.value {
			case "EOF":
				p.finish()
				return p.done()
			case "ENDSEC":
				p.finish()
				inEntities = false
				continue
			case "SECTION":
				continue
			}
		}
		if tg.code == 2 && !inEntities && tg.value == "ENTITIES" {
			inEntities = true
			continue
		}
		if !inEntities {
			continue
		}

		if tg.code == 0 {
			p.startEntity(tg.value)
		} else {
			p.field(tg)
		}
	}

	p.finish()
	return p.done()
}

// parser accumulates entity fields between code-0 boundaries.
type parser struct {
	prims   []geom.Primitive
	skipped map[string]int

	kind     string
	start    orb.Point
	end      orb.Point
	center   orb.Point
	radius   float64
	angles   [2]float64
	closed   bool
	vertices []orb.Point

	// inPolyline is set between POLYLINE and SEQEND, where VERTEX entities
	// carry the vertices.
	inPolyline bool
}

func (p *parser) startEntity(name string) {
	if p.inPolyline {
		switch name {
		case "VERTEX":
			p.vertices = append(p.vertices, orb.Point{})
			return
		case "SEQEND":
			p.prims = append(p.prims, geom.Polyline{Vertices: p.vertices, Closed: p.closed})
			p.reset()
			return
		default:
			// Unterminated POLYLINE; emit what was collected.
			p.prims = append(p.prims, geom.Polyline{Vertices: p.vertices, Closed: p.closed})
			p.reset()
		}
	} else {
		p.finish()
	}

	switch name {
	case "LINE", "ARC", "CIRCLE", "LWPOLYLINE":
		p.kind = name
	case "POLYLINE":
		p.kind = name
		p.inPolyline = true
	default:
		if p.skipped == nil {
			p.skipped = make(map[string]int)
		}
		p.skipped[name]++
	}
}

func (p *parser) field(tg tag) {
	if p.kind == "" {
		return
	}
	v, err := strconv.ParseFloat(tg.value, 64)
	if err != nil && tg.code != 70 && tg.code != 90 {
		return
	}

	if p.inPolyline || p.kind == "LWPOLYLINE" {
		switch tg.code {
		case 10:
			if p.kind == "LWPOLYLINE" {
				p.vertices = append(p.vertices, orb.Point{})
			}
			if len(p.vertices) > 0 {
				p.vertices[len(p.vertices)-1][0] = v
			}
		case 20:
			if len(p.vertices) > 0 {
				p.vertices[len(p.vertices)-1][1] = v
			}
		case 70:
			if flags, err := strconv.Atoi(tg.value); err == nil {
				p.closed = flags&1 != 0
			}
		}
		return
	}

	switch tg.code {
	case 10:
		p.start[0], p.center[0] = v, v
	case 20:
		p.start[1], p.center[1] = v, v
	case 11:
		p.end[0] = v
	case 21:
		p.end[1] = v
	case 40:
		p.radius = v
	case 50:
		p.angles[0] = v
	case 51:
		p.angles[1] = v
	}
}

// finish emits the entity accumulated so far, if any.
func (p *parser) finish() {
	switch p.kind {
	case "LINE":
		p.prims = append(p.prims, geom.Line{Start: p.start, End: p.end})
	case "ARC":
		p.prims = append(p.prims, geom.Arc{Center: p.center, Radius: p.radius, StartAngle: p.angles[0], EndAngle: p.angles[1]})
	case "CIRCLE":
		p.prims = append(p.prims, geom.Circle{Center: p.center, Radius: p.radius})
	case "LWPOLYLINE":
		p.prims = append(p.prims, geom.Polyline{Vertices: p.vertices, Closed: p.closed})
	case "POLYLINE":
		// Reached only for an unterminated stream; SEQEND normally emits.
		p.prims = append(p.prims, geom.Polyline{Vertices: p.vertices, Closed: p.closed})
	}
	p.reset()
}

func (p *parser) reset() {
	p.kind = ""
	p.start, p.end, p.center = orb.Point{}, orb.Point{}, orb.Point{}
	p.radius = 0
	p.angles = [2]float64{}
	p.closed = false
	p.vertices = nil
	p.inPolyline = false
}

func (p *parser) done() ([]geom.Primitive, error) {
	for name, n := range p.skipped {
		log.Printf("[DXF] skipped %d unsupported %s entities", n, name)
	}
	return p.prims, nil
}
