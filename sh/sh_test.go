package sh_test

import (
	"testing"

	"github.com/aikaryashala/kitup/sh"
	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	assert.Equal(t, "ls", sh.Command("ls"))
	assert.Equal(t, "echo 'hello world'", sh.Command("echo", "hello world"))
	assert.Equal(t, "python3 -m venv /opt/course-venv", sh.Command("python3", "-m", "venv", "/opt/course-venv"))
}

func TestCommandBuilder(t *testing.T) {
	cmd := sh.CommandBuilder("ls").Arg("file with spaces").Raw("| grep foo")
	assert.Equal(t, "ls 'file with spaces' | grep foo", cmd.String())

	cmd = sh.CommandBuilder("lldb --version").ErrToOut()
	assert.Equal(t, "lldb --version 2>&1", cmd.String())

	cmd = sh.CommandBuilder("command -v apt-get").ErrToNull()
	assert.Equal(t, "command -v apt-get 2>/dev/null", cmd.String())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "plain", sh.Quote("plain"))
	assert.Equal(t, "'has space'", sh.Quote("has space"))
	assert.Equal(t, `''"'"'quoted'"'"''`, sh.Quote("'quoted'"))
}
