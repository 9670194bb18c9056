package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	con := New(strings.NewReader("  Alice  \nBob\n"), &out)

	got, err := con.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got)
	assert.Equal(t, "Name: ", out.String())

	got, err = con.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got)
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	con := New(strings.NewReader("Carol"), io.Discard)
	got, err := con.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Carol", got)
}

func TestPromptEOF(t *testing.T) {
	con := New(strings.NewReader(""), io.Discard)
	_, err := con.Prompt("Name: ")
	require.ErrorIs(t, err, io.EOF)
}

func TestPromptFloat(t *testing.T) {
	t.Run("valid number", func(t *testing.T) {
		con := New(strings.NewReader("45000.5\n"), io.Discard)
		v, ok, err := con.PromptFloat("Salary: ")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 45000.5, v)
	})

	t.Run("unparsable input", func(t *testing.T) {
		con := New(strings.NewReader("lots\n"), io.Discard)
		_, ok, err := con.PromptFloat("Salary: ")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stream failure", func(t *testing.T) {
		con := New(strings.NewReader(""), io.Discard)
		_, _, err := con.PromptFloat("Salary: ")
		require.ErrorIs(t, err, io.EOF)
	})
}
