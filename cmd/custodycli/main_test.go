package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/tendermint/tendermint/libs/log"
)

func TestMain(m *testing.M) {
	logger = log.NewNopLogger()
	os.Exit(m.Run())
}

// run executes given command with the input and returns its output. Test
// fails if the command returns an error.
func run(t testing.TB, cmd func(io.Reader, io.Writer, []string) error, input []byte, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	if err := cmd(bytes.NewReader(input), &out, args); err != nil {
		t.Fatalf("command failed: %+v", err)
	}
	return out.Bytes()
}

func TestAvailableCommands(t *testing.T) {
	cmds := availableCmds()
	if len(cmds) != len(commands) {
		t.Fatalf("want %d commands, got %d", len(commands), len(cmds))
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1] >= cmds[i] {
			t.Fatalf("commands not sorted: %q", cmds)
		}
	}
}

func TestVersion(t *testing.T) {
	out := run(t, cmdVersion, nil)
	if !bytes.HasPrefix(out, []byte("v")) {
		t.Fatalf("unexpected version: %q", out)
	}
}
