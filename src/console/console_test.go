package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("first\r\nsecond\nlast"), &out)

	line, err := c.ReadLine(">>> ")
	assert.Nil(t, err)
	assert.Equal(t, "first", line)

	line, err = c.ReadLine("")
	assert.Nil(t, err)
	assert.Equal(t, "second", line)

	// Last line without newline
	line, err = c.ReadLine("")
	assert.Nil(t, err)
	assert.Equal(t, "last", line)

	_, err = c.ReadLine("")
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, ">>> ", out.String())
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.Printf("%s=%d\n", "a", 1)
	c.Println("b")
	assert.Equal(t, "a=1\nb\n", out.String())
	assert.Equal(t, &out, c.Writer())
}
