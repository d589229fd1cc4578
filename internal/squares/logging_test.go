package squares

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_TimestampedInfoLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.WithField("worker", 3).Info("Calculated square of 2: 4")
	l.Debug("hidden")

	out := buf.String()
	require.Regexp(t, regexp.MustCompile(`time="\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}"`), out)
	require.Contains(t, out, `msg="Calculated square of 2: 4"`)
	require.Contains(t, out, "worker=3")
	require.NotContains(t, out, "hidden")
}
