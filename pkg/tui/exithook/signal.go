// ABOUTME: Drains an exit-hook registry when the process is interrupted or terminated
// ABOUTME: Exits with the conventional 128+signal status after the hooks have run

package exithook

import (
	"os"
	"os/signal"
	"sync"
)

// Runner is anything that can drain pending exit hooks.
type Runner interface {
	Run()
}

// NotifyOnSignal listens for the termination signals of the platform
// (SIGINT and SIGTERM; interrupt notes on plan9). On the first signal it
// runs r and then calls exit with 128 plus the signal number, or 1 where
// signals are not numbered. A nil exit
// means os.Exit. The returned function stops listening.
func NotifyOnSignal(r Runner, exit func(code int)) (stop func()) {
	if exit == nil {
		exit = os.Exit
	}

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, terminationSignals...)

	go func() {
		select {
		case sig := <-sigCh:
			r.Run()
			exit(exitCode(sig))
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
