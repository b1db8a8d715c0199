package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/ds124wfegd/promocard/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetOutput(os.Stderr)
	})

	tests := []struct {
		name     string
		cfg      config.LogConfig
		expected logrus.Level
	}{
		{"debug text", config.LogConfig{Level: "debug"}, logrus.DebugLevel},
		{"warn json", config.LogConfig{Level: "warn", JSON: true}, logrus.WarnLevel},
		{"unknown level", config.LogConfig{Level: "loud"}, logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			Setup(tt.cfg, buf)
			assert.Equal(t, tt.expected, logrus.GetLevel())

			logrus.Error("probe")
			if tt.cfg.JSON {
				assert.Contains(t, buf.String(), `"msg":"probe"`)
			} else {
				assert.Contains(t, buf.String(), "msg=probe")
			}
		})
	}
}
