//go:build !js && !wasm

package console

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNativeConsole_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Logger()
	prevOut, prevLevel := l.Out, l.GetLevel()
	t.Cleanup(func() {
		l.SetOutput(prevOut)
		l.SetLevel(prevLevel)
	})

	l.SetOutput(&buf)
	l.SetLevel(logrus.WarnLevel)

	Log("router ready")
	assert.Empty(t, buf.String(), "debug output should be filtered at warn level")

	Error("navigation failed")
	assert.Contains(t, buf.String(), "navigation failed")
}
