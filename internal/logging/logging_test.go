package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"taskcal/internal/logging"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, false)

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown", zap.String(logging.KeyKey, "list 3"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"key": "list 3"`)
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, true)

	log.Debug("trace", zap.Int("cells", 42))

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "trace")
}

func TestNop(t *testing.T) {
	logging.Nop().Error("nothing happens")
}
