// ABOUTME: Provider caches the one backend chosen for its lifetime and answers queries through it
// ABOUTME: Default is the process-wide provider; tests inject a fixed backend with NewProvider

package capability

import "sync"

// Provider resolves a Backend once and forwards every query to it.
// A Provider is itself a Backend.
type Provider struct {
	once    sync.Once
	pick    func() Backend
	backend Backend
}

var _ Backend = (*Provider)(nil)

// NewProvider returns a Provider fixed to b. A nil b means Fallback.
func NewProvider(b Backend) *Provider {
	return &Provider{pick: func() Backend { return b }}
}

// NewLazyProvider returns a Provider that selects the backend for p with
// load on first use.
func NewLazyProvider(p Platform, load Loader) *Provider {
	return &Provider{pick: func() Backend { return SelectWith(p, load) }}
}

var defaultProvider = sync.OnceValue(func() *Provider {
	return NewLazyProvider(Detect(), Load)
})

// Default returns the process-wide Provider for the detected platform.
func Default() *Provider {
	return defaultProvider()
}

// Backend returns the selected backend, selecting it on first call.
func (p *Provider) Backend() Backend {
	p.once.Do(func() {
		p.backend = p.pick()
		if p.backend == nil {
			p.backend = Fallback{}
		}
		p.pick = nil
	})
	return p.backend
}

func (p *Provider) Kind() Kind              { return p.Backend().Kind() }
func (p *Provider) StdoutInteractive() bool { return p.Backend().StdoutInteractive() }
func (p *Provider) StdinInteractive() bool  { return p.Backend().StdinInteractive() }

func (p *Provider) TerminalSize() (Size, bool) {
	return p.Backend().TerminalSize()
}

// SizeOr returns the terminal size, or def when it is unknown.
func (p *Provider) SizeOr(def Size) Size {
	if s, ok := p.TerminalSize(); ok {
		return s
	}
	return def
}
