package version_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"paylist/cmd/version"
)

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", version.Cmd.Use)
	assert.Contains(t, version.Cmd.Short, "version")
	assert.NotNil(t, version.Cmd.Run)
}

func TestVersionCommand_Output(t *testing.T) {
	buf := new(bytes.Buffer)
	version.Cmd.SetOut(buf)

	version.Cmd.Run(version.Cmd, nil)

	output := buf.String()
	assert.Contains(t, output, "paylist dev")
	assert.Contains(t, output, "Build date:")
	assert.Contains(t, output, "Git commit:")
	assert.Contains(t, output, "Go version:")
}
