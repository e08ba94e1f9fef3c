// ABOUTME: One-shot backend selection with degradation to Fallback on any load failure
// ABOUTME: Load errors and load panics are both treated as native-linkage failures

package capability

import (
	"fmt"
	"os"

	"github.com/mauromedda/termrt/internal/log"
)

// Loader constructs the backend for a kind.
type Loader func(kind Kind) (Backend, error)

// Load is the default Loader.
func Load(kind Kind) (Backend, error) {
	switch kind {
	case KindNativePosix:
		return loadNativePosix()
	case KindNativeWindows:
		return loadNativeWindows()
	case KindHostedPosix, KindHostedWindows:
		return newHosted(kind, os.Stdin, os.Stdout), nil
	case KindFallback:
		return Fallback{}, nil
	default:
		return nil, fmt.Errorf("loading %s: %w", kind, ErrBackendUnavailable)
	}
}

// Select picks the backend for p with the default loader.
func Select(p Platform) Backend {
	return SelectWith(p, Load)
}

// SelectWith picks the backend for p, loading it with load. It never fails:
// unknown platforms and backends that fail to load yield Fallback.
func SelectWith(p Platform, load Loader) Backend {
	return SelectKind(p.Preferred(), load)
}

// SelectKind loads kind with load, degrading to Fallback on failure.
func SelectKind(kind Kind, load Loader) Backend {
	if kind == KindFallback {
		return Fallback{}
	}
	b, err := safeLoad(load, kind)
	if err != nil {
		log.Debug("capability: %v; using fallback", err)
		return Fallback{}
	}
	log.Debug("capability: selected %s backend", b.Kind())
	return b
}

func safeLoad(load Loader, kind Kind) (b Backend, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("loading %s backend: panic: %v", kind, r)
		}
	}()

	b, err = load(kind)
	if err != nil {
		return nil, fmt.Errorf("loading %s backend: %w", kind, err)
	}
	if b == nil {
		return nil, fmt.Errorf("loading %s backend: %w", kind, ErrBackendUnavailable)
	}
	return b, nil
}
