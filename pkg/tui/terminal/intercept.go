// ABOUTME: Ordered interceptor pipeline folded over a PrintRequest before it reaches a Terminal
// ABOUTME: Ships StripStyles and Prefix interceptors

package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Interceptor derives the request to print from the request it is given.
type Interceptor interface {
	Intercept(req PrintRequest) PrintRequest
}

// InterceptorFunc adapts a function to Interceptor.
type InterceptorFunc func(req PrintRequest) PrintRequest

// Intercept calls f(req).
func (f InterceptorFunc) Intercept(req PrintRequest) PrintRequest {
	return f(req)
}

// Dispatch folds interceptors over req from first to last and hands the
// result to t. With no interceptors req is delivered unchanged.
func Dispatch(req PrintRequest, t Terminal, interceptors []Interceptor) error {
	for _, i := range interceptors {
		req = i.Intercept(req)
	}
	return t.CompletePrintRequest(req)
}

// StripStyles removes escape sequences from the request text. Install it
// when the output is not a terminal.
func StripStyles() Interceptor {
	return InterceptorFunc(func(req PrintRequest) PrintRequest {
		return req.WithText(ansi.Strip(req.Text))
	})
}

// Prefix prepends p to every line of the request text.
func Prefix(p string) Interceptor {
	return InterceptorFunc(func(req PrintRequest) PrintRequest {
		if p == "" {
			return req
		}
		lines := strings.Split(req.Text, "\n")
		for i, line := range lines {
			lines[i] = p + line
		}
		return req.WithText(strings.Join(lines, "\n"))
	})
}
