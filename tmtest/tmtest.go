/*

Package tmtest provides helpers for testing using tendermint server.

*/
package tmtest

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/guild-net/guild/guildtest/assert"
)

// TestReporter is the minimal subset of testing.TB needed to run these test helpers
type TestReporter interface {
	assert.Tester
	Skipf(string, ...interface{})
	Logf(string, ...interface{})
}

// InitTendermint prepares the given home directory by running `tendermint
// init` in it. The directory can then be populated with application state
// and passed to RunTendermint.
//
// Set FORCE_TM_TEST=1 environment variable to fail the test if the binary is
// not available. This might be desired when running tests by CI.
func InitTendermint(t TestReporter, home string) {
	t.Helper()

	tmpath := lookupTendermint(t)
	out, err := exec.Command(tmpath, "init", "--home", home).CombinedOutput()
	if err != nil {
		t.Fatalf("Tendermint init failed: %s\n%s", err, out)
	}
	if os.Getenv("TM_DEBUG") != "" {
		t.Logf("tendermint init: %s", out)
	}
}

// RunTendermint starts a tendermint process. Returned cleanup function will
// ensure the process has stopped and will block until.
//
// Set FORCE_TM_TEST=1 environment variable to fail the test if the binary is
// not available. This might be desired when running tests by CI.
//
// Set TM_DEBUG=1 environmental variable to output all tm logs
func RunTendermint(ctx context.Context, t TestReporter, home string) (cleanup func()) {
	t.Helper()

	tmpath := lookupTendermint(t)
	cmd := exec.CommandContext(ctx, tmpath, "node", "--home", home)
	// log tendermint output for verbose debugging....
	if os.Getenv("TM_DEBUG") != "" {
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		t.Fatalf("Tendermint process failed: %s", err)
	}

	// Give tendermint time to setup.
	time.Sleep(2 * time.Second)
	t.Logf("Running %s pid=%d", tmpath, cmd.Process.Pid)

	// Return a cleanup function, that will wait for the tendermint to stop.
	// We also auto-kill when the context is Done
	done := make(chan struct{})

	var once sync.Once
	cleanup = func() {
		once.Do(func() {
			t.Logf("tendermint cleanup called")
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			close(done)
		})

		// Block until the tendermint server process is gone.
		<-done
	}

	go func() {
		select {
		case <-ctx.Done():
			cleanup()
		case <-done:
		}
	}()

	return cleanup
}

func lookupTendermint(t TestReporter) string {
	t.Helper()

	tmpath, err := exec.LookPath("tendermint")
	if err != nil {
		if os.Getenv("FORCE_TM_TEST") != "1" {
			t.Skipf("Tendermint binary not found. Set FORCE_TM_TEST=1 to fail this test.")
		} else {
			t.Fatalf("Tendermint binary not found. Do not set FORCE_TM_TEST=1 to skip this test.")
		}
	}
	return tmpath
}
