// ABOUTME: Defines PrintRequest and the Terminal contract renderers print through
// ABOUTME: Requests are values; interceptors derive new requests instead of mutating them

package terminal

import "io"

// PrintRequest is text to emit plus how to emit it. It is a value type:
// copies are independent, so an interceptor cannot change the request
// another interceptor is looking at.
type PrintRequest struct {
	Text              string
	TrailingLinebreak bool
	// Stderr routes the request to the error stream.
	Stderr bool
}

// WithText returns a copy of r carrying text.
func (r PrintRequest) WithText(text string) PrintRequest {
	r.Text = text
	return r
}

// WithLinebreak returns a copy of r with the trailing linebreak flag set to b.
func (r PrintRequest) WithLinebreak(b bool) PrintRequest {
	r.TrailingLinebreak = b
	return r
}

// Terminal consumes completed print requests. Writes through the
// io.Writer side are raw control output (cursor sequences) and bypass
// interception.
type Terminal interface {
	CompletePrintRequest(req PrintRequest) error
	io.Writer
}
