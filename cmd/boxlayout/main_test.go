package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/grindlemire/go-boxlayout/internal/debug"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testdata = "../../internal/document/testdata"

// run executes a fresh root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	debug.ResetForTest()
	t.Cleanup(debug.ResetForTest)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
