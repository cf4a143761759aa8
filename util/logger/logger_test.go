package logger

import (
	"bytes"
	"testing"

	"go-greatest/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New(&config.LoggerConfig{Level: "warn", TimestampFormat: "15:04"})
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, l.Level)

	buf := &bytes.Buffer{}
	l.Out = buf
	l.Info("hidden")
	require.Zero(t, buf.Len())

	l.WithField("prefix", "greatest").Warn("visible")
	require.Contains(t, buf.String(), "visible")
	require.Contains(t, buf.String(), "greatest")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&config.LoggerConfig{Level: "loud"})
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	require.NotNil(t, L)
	require.Equal(t, logrus.InfoLevel, L.Level)
}
