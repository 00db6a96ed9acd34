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

func TestIccma23ReaderParsesHeaderAndAttacks(t *testing.T) {
	input := "p af 3\n1 2\n2 3\n"
	af, err := textio.Iccma23Reader{}.ReadInstance(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, af.NArguments())
	three, ok := af.ArgumentSet().GetByLabel(3)
	require.True(t, ok)
	assert.Equal(t, 1, af.NAttacksTo(three.ID()))
}

func TestIccma23ReaderRejectsAttackBeforeHeader(t *testing.T) {
	_, err := textio.Iccma23Reader{}.ReadInstance(strings.NewReader("1 2\n"))
	assert.Error(t, err)
}

func TestIccma23WriterFormatsExtensionsAndAcceptance(t *testing.T) {
	af := aa.New[int]()
	a, err := af.NewArgument(1)
	require.NoError(t, err)
	b, err := af.NewArgument(2)
	require.NoError(t, err)

	writer := textio.Iccma23Writer[int]{}

	var buf bytes.Buffer
	require.NoError(t, writer.WriteExtension(&buf, []*aa.Argument[int]{a, b}))
	assert.Equal(t, "w 1 2\n", buf.String())

	buf.Reset()
	require.NoError(t, writer.WriteAcceptance(&buf, false, nil))
	assert.Equal(t, "NO\n", buf.String())
}
