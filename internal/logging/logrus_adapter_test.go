package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "debug level", level: "debug", expected: logrus.DebugLevel},
		{name: "info level", level: "info", expected: logrus.InfoLevel},
		{name: "warn level", level: "warn", expected: logrus.WarnLevel},
		{name: "error level", level: "error", expected: logrus.ErrorLevel},
		{name: "invalid level falls back to info", level: "loud", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, ok := NewLogrusAdapter(tt.level, "text").(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expected, adapter.logger.GetLevel())
		})
	}
}

func TestLogrusAdapter_JSONFormat(t *testing.T) {
	adapter, ok := NewLogrusAdapter("debug", "json").(*LogrusAdapter)
	require.True(t, ok)

	var buf bytes.Buffer
	adapter.logger.SetOutput(&buf)

	adapter.Info("processing rows", Field{Key: FieldSource, Value: "invoices"}, Field{Key: FieldCount, Value: 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "processing rows", entry["msg"])
	assert.Equal(t, "invoices", entry[FieldSource])
	assert.Equal(t, float64(3), entry[FieldCount])
}

func TestLogrusAdapter_WithError(t *testing.T) {
	adapter, ok := NewLogrusAdapter("debug", "json").(*LogrusAdapter)
	require.True(t, ok)

	var buf bytes.Buffer
	adapter.logger.SetOutput(&buf)

	adapter.WithError(errors.New("boom")).Warn("skipping row")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "skipping row", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestConvertFields(t *testing.T) {
	fields := []Field{
		{Key: FieldRow, Value: 7},
		{Key: FieldReason, Value: "status not accepted"},
	}

	converted := convertFields(fields)
	assert.Len(t, converted, 2)
	assert.Equal(t, 7, converted[FieldRow])
	assert.Equal(t, "status not accepted", converted[FieldReason])
}

func TestMockLogger_DerivedLoggersRecordToRoot(t *testing.T) {
	mock := &MockLogger{}

	mock.WithError(errors.New("bad amount")).WithField(FieldRow, 2).Warn("skipping invoice row")

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "skipping invoice row", entry.Message)
	assert.EqualError(t, entry.Error, "bad amount")
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, FieldRow, entry.Fields[0].Key)
}

func TestMockLogger_EntriesByLevel(t *testing.T) {
	mock := &MockLogger{}
	mock.Debug("one")
	mock.Warn("two")
	mock.Warn("three")

	assert.Len(t, mock.EntriesByLevel("WARN"), 2)
	assert.Len(t, mock.EntriesByLevel("DEBUG"), 1)
	assert.Empty(t, mock.EntriesByLevel("ERROR"))
	assert.True(t, mock.HasEntry("WARN", "two"))
	assert.False(t, mock.HasEntry("INFO", "two"))
}
