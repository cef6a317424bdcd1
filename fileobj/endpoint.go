package fileobj

import (
	"fmt"
	"reflect"

	"github.com/jmgilman/go/streamio/core"
	streamerrors "github.com/jmgilman/go/streamio/errors"
)

// Shape names the direction set of a wrapped stream.
type Shape string

const (
	// ShapeInput is a read-only stream.
	ShapeInput Shape = "input"
	// ShapeOutput is a write-only stream.
	ShapeOutput Shape = "output"
	// ShapeCombined is a coupled read/write pair closed as one unit.
	ShapeCombined Shape = "combined"
)

// Endpoint is the classified form of a stream. It is implemented only by
// InputOnly, OutputOnly and Combined.
type Endpoint interface {
	Shape() Shape
	sealed()
}

// InputOnly classifies a stream that can only be read.
type InputOnly struct {
	Stream core.InputStream
}

// OutputOnly classifies a stream that can only be written.
type OutputOnly struct {
	Stream core.OutputStream
}

// Combined classifies a bidirectional stream. Its two ends are views into
// Stream; only Stream is ever closed.
type Combined struct {
	Stream core.IOStream
}

func (InputOnly) Shape() Shape  { return ShapeInput }
func (OutputOnly) Shape() Shape { return ShapeOutput }
func (Combined) Shape() Shape   { return ShapeCombined }

func (InputOnly) sealed()  {}
func (OutputOnly) sealed() {}
func (Combined) sealed()   {}

// ProbeFunc classifies a foreign object into an Endpoint. An embedding layer
// that recognises its own stream types supplies one with WithProbe.
type ProbeFunc func(obj any) (Endpoint, error)

// Probe is the default ProbeFunc. It accepts an Endpoint as-is, and
// otherwise checks for core.IOStream, core.InputStream and core.OutputStream
// in that order, so a type exposing both ends through one coupled handle is
// always classified as Combined.
func Probe(obj any) (Endpoint, error) {
	if isNil(obj) {
		return nil, opError("probe", ErrInvalidHandle)
	}

	switch s := obj.(type) {
	case Endpoint:
		return s, nil
	case core.IOStream:
		return Combined{Stream: s}, nil
	case core.InputStream:
		return InputOnly{Stream: s}, nil
	case core.OutputStream:
		return OutputOnly{Stream: s}, nil
	}

	return nil, fmt.Errorf("probe: got %T: %w", obj, ErrTypeMismatch)
}

// classify runs probe and resolves the endpoint into its owned directions.
func classify(probe ProbeFunc, obj any) (core.InputStream, core.OutputStream, core.IOStream, error) {
	ep, err := probe(obj)
	if err != nil {
		if streamerrors.GetCode(err) != streamerrors.CodeTypeMismatch {
			err = streamerrors.Wrap(err, streamerrors.CodeTypeMismatch, "unrecognized stream")
		}
		return nil, nil, nil, err
	}

	switch ep := ep.(type) {
	case InputOnly:
		if isNil(ep.Stream) {
			return nil, nil, nil, opError("probe", ErrInvalidHandle)
		}
		return ep.Stream, nil, nil, nil
	case OutputOnly:
		if isNil(ep.Stream) {
			return nil, nil, nil, opError("probe", ErrInvalidHandle)
		}
		return nil, ep.Stream, nil, nil
	case Combined:
		if isNil(ep.Stream) {
			return nil, nil, nil, opError("probe", ErrInvalidHandle)
		}
		in, out := ep.Stream.InputStream(), ep.Stream.OutputStream()
		if isNil(in) || isNil(out) {
			return nil, nil, nil, opError("probe", ErrInvalidHandle)
		}
		return in, out, ep.Stream, nil
	}

	return nil, nil, nil, fmt.Errorf("probe: returned %T: %w", ep, ErrTypeMismatch)
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
