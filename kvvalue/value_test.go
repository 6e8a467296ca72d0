package kvvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshValueIsEmptyString(t *testing.T) {
	var v Value
	assert.True(t, v.IsString())
	assert.False(t, v.IsBinary())
	assert.Equal(t, 1, v.Size())
}

func TestSetStringNilStoresEmpty(t *testing.T) {
	var v Value
	v.SetBinary([]byte{1, 2, 3}, 3)
	n := v.SetString(nil)
	assert.Equal(t, 1, n)
	assert.True(t, v.IsString())
	assert.False(t, v.IsBinary())
}

func TestSetStringCopies(t *testing.T) {
	var v Value
	s := "hello"
	n := v.SetString(&s)
	assert.Equal(t, len(s)+1, n)
	buf := make([]byte, n)
	got, err := v.GetString(buf)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestSetBinaryFreesOnSentinels(t *testing.T) {
	var v Value
	v.SetString(ptr("x"))

	n, err := v.SetBinary(nil, SSIZE_MAX)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.True(t, v.IsBinary())
	assert.Equal(t, 0, v.Size())

	n, err = v.SetBinary(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = v.SetBinary(nil, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSetBinarySizeMaxSentinelFails(t *testing.T) {
	var v Value
	// The unsigned size_t max, reinterpreted as a signed 64-bit length,
	// is -1 — distinct from the SSIZE_MAX ("free") sentinel.
	_, err := v.SetBinary(nil, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetBinaryZeroLengthWithNonNilPointerFails(t *testing.T) {
	var v Value
	_, err := v.SetBinary([]byte{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetBinaryCopiesIncludingZeros(t *testing.T) {
	var v Value
	data := []byte{0x00, 'b', 0x01, 0x1C, 'd', 'a', 't', 'a', 'T'}
	n, err := v.SetBinary(data, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.True(t, v.IsBinary())

	buf := make([]byte, len(data))
	got, err := v.GetBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, len(data), got)
	assert.Equal(t, data, buf)
}

func TestTypeMismatch(t *testing.T) {
	var v Value
	v.SetBinary([]byte{1}, 1)
	_, err := v.GetString(make([]byte, 10))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var s Value
	s.SetString(ptr("x"))
	_, err = s.GetBinary(make([]byte, 10))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestGetBinaryBoundaryBuffers(t *testing.T) {
	var v Value
	v.SetBinary([]byte{1, 2, 3}, 3)

	_, err := v.GetBinary(make([]byte, 2))
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	_, err = v.GetBinary(make([]byte, 3))
	assert.NoError(t, err)

	_, err = v.GetBinary(nil)
	assert.ErrorIs(t, err, ErrNilBuffer)
}

func TestGetBinaryEmptyStoredValue(t *testing.T) {
	var v Value
	v.SetBinary(nil, 0)
	n, err := v.GetBinary(make([]byte, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func ptr(s string) *string { return &s }
