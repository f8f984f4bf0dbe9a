package worker_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/bytefifo/internal/worker"
)

func TestReporter(t *testing.T) {
	var out bytes.Buffer
	r := worker.NewReporter(&out)

	require.NoError(t, r.Report(1))
	require.NoError(t, r.Report(42))
	require.NoError(t, r.Report(math.MaxUint32))

	assert.Equal(t, "Got 1\nGot 42\nGot 4294967295\n", out.String())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestReporter_WriteError(t *testing.T) {
	r := worker.NewReporter(errWriter{})
	assert.Error(t, r.Report(1))
}

func TestReporter_NilWriter(t *testing.T) {
	assert.NoError(t, worker.NewReporter(nil).Report(7))
}
