package dirflat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunModelExecuteClosesProgress(t *testing.T) {
	app := newMemApp("/A")
	writeTree(t, app.fs, []string{"/A/F"})

	m := newRunModel(app)
	msg := m.execute()()

	done, ok := msg.(doneMsg)
	require.True(t, ok, "execute() should produce a doneMsg")
	require.NoError(t, done.err)
	require.Len(t, done.summary.Renamed, 1)

	// Any buffered progress drains, then the closed channel ends the loop.
	// An open channel here would leave waitProgress blocked forever.
	for {
		select {
		case _, open := <-m.progress:
			if !open {
				return
			}
		default:
			t.Fatal("progress channel left open after the run")
		}
	}
}
