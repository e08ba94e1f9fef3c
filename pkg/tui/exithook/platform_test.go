// ABOUTME: Checks that every target platform compiles one signal list and exit-status mapping
// ABOUTME: plan9 uses notes instead of numbered signals

package exithook

import (
	"testing"

	"github.com/mauromedda/termrt/internal/buildcheck"
)

func TestSignalTable_DeclaredOncePerPlatform(t *testing.T) {
	t.Parallel()

	for _, target := range buildcheck.Targets {
		t.Run(target.String(), func(t *testing.T) {
			t.Parallel()

			decls, err := buildcheck.Declarations(".", target)
			if err != nil {
				t.Fatal(err)
			}
			for _, name := range []string{"terminationSignals", "exitCode", "NotifyOnSignal"} {
				if n := decls[name]; n != 1 {
					t.Errorf("%s declared %d times, want 1", name, n)
				}
			}
		})
	}
}
