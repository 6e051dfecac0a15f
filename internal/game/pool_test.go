package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterPoolAppendUntilFull(t *testing.T) {
	var p LetterPool
	for i := 0; i < PoolSize; i++ {
		require.False(t, p.Full())
		require.NoError(t, p.Append('a'))
	}
	assert.True(t, p.Full())
	assert.Equal(t, PoolSize, p.Len())

	err := p.Append('B')
	assert.True(t, errors.Is(err, ErrPoolFull))
	assert.Equal(t, PoolSize, p.Len())
}

func TestLetterPoolRejectsNonLetters(t *testing.T) {
	var p LetterPool
	err := p.Append('1')
	assert.True(t, errors.Is(err, ErrInvalidLetter))
	assert.Equal(t, 0, p.Len())
}

func TestLetterPoolAllowsIsCaseInsensitive(t *testing.T) {
	p, err := NewLetterPool("aeiOUbcdfg")
	require.NoError(t, err)

	assert.Equal(t, "AEIOUBCDFG", p.String())
	assert.True(t, p.Allows('b'))
	assert.True(t, p.Allows('O'))
	assert.False(t, p.Allows('z'))
}

func TestLetterPoolLettersIsACopy(t *testing.T) {
	p, err := NewLetterPool("ABC")
	require.NoError(t, err)

	letters := p.Letters()
	letters[0] = 'Z'
	assert.Equal(t, "ABC", p.String())
}

func TestNewLetterPoolTooLong(t *testing.T) {
	_, err := NewLetterPool("ABCDEFGHILM")
	assert.True(t, errors.Is(err, ErrPoolFull))
}

func TestLetterPoolCanSpell(t *testing.T) {
	p, err := NewLetterPool("AEIOUBCDFG")
	require.NoError(t, err)

	assert.True(t, p.CanSpell("CIBO"))
	assert.True(t, p.CanSpell("BEBE"))
	assert.False(t, p.CanSpell("MARE"))
	assert.False(t, p.CanSpell("cibo"))
	assert.False(t, p.CanSpell(""))
}
