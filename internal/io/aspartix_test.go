package io_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjackson1/crustabri/internal/aa"
	textio "github.com/alexjackson1/crustabri/internal/io"
)

func TestAspartixReaderAppliesAttacksRegardlessOfDeclarationOrder(t *testing.T) {
	input := "att(a,b).\narg(a).\narg(b).\n"
	af, err := textio.AspartixReader{}.ReadInstance(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, af.NArguments())
	b, ok := af.ArgumentSet().GetByLabel("b")
	require.True(t, ok)
	assert.Equal(t, 1, af.NAttacksTo(b.ID()))
}

func TestAspartixReaderRejectsUnrecognisedLines(t *testing.T) {
	_, err := textio.AspartixReader{}.ReadInstance(strings.NewReader("nonsense(a).\n"))
	assert.Error(t, err)
}

func TestAspartixWriterFormatsExtensionsAndAcceptance(t *testing.T) {
	af := aa.New[string]()
	a, err := af.NewArgument("a")
	require.NoError(t, err)
	b, err := af.NewArgument("b")
	require.NoError(t, err)

	writer := textio.AspartixWriter[string]{}

	var buf bytes.Buffer
	require.NoError(t, writer.WriteExtension(&buf, []*aa.Argument[string]{a, b}))
	assert.Equal(t, "[a,b]\n", buf.String())

	buf.Reset()
	require.NoError(t, writer.WriteExtension(&buf, nil))
	assert.Equal(t, "NO\n", buf.String())

	buf.Reset()
	require.NoError(t, writer.WriteAcceptance(&buf, true, []*aa.Argument[string]{a}))
	assert.Equal(t, "YES\n[a]\n", buf.String())
}
