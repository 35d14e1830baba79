// Package dxf reads and writes the small DXF entity subset the repair
// pipeline needs: LINE, ARC, CIRCLE, LWPOLYLINE and POLYLINE on input,
// LWPOLYLINE and LINE on output. It speaks the tagged group-code text format
// directly and ignores everything outside the ENTITIES section.
//
// The pipeline core never fails; this package is the collaborator whose I/O
// errors are the tool's only fatal failure mode. Read and write failures are
// distinguishable via errors.Is against ErrRead and ErrWrite.
package dxf

import "errors"

var (
	// ErrRead marks a failure to read or parse an input drawing.
	ErrRead = errors.New("dxf read failed")

	// ErrWrite marks a failure to write an output drawing.
	ErrWrite = errors.New("dxf write failed")
)
