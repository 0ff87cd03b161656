package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-formdata/header"
	"github.com/zostay/go-formdata/header/disposition"
)

func TestHeader_Get(t *testing.T) {
	t.Parallel()

	block := []byte("Content-Type: text/plain\r\n" +
		"X-Twice: one\r\n" +
		"x-twice: two\r\n")

	h, err := header.Parse(block, header.CRLF)
	require.NoError(t, err)

	ct, err := h.Get("CONTENT-TYPE")
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", ct)

	// a repeated field returns the first value and flags the repetition
	v, err := h.Get("X-Twice")
	assert.ErrorIs(t, err, header.ErrManyFields)
	assert.Equal(t, "one", v)

	_, err = h.Get("X-Missing")
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestHeader_Raw(t *testing.T) {
	t.Parallel()

	block := []byte("Content-Disposition: form-data; name=\"x\"\r\n")
	h, err := header.Parse(block, header.CRLF)
	require.NoError(t, err)

	raw, ok := h.Raw("content-disposition")
	assert.True(t, ok)
	assert.Equal(t, []byte(`form-data; name="x"`), raw)

	_, ok = h.Raw("Content-Type")
	assert.False(t, ok)
}

func TestHeader_GetIndexesNamed(t *testing.T) {
	t.Parallel()

	block := []byte("A: 1\r\nB: 2\r\na: 3\r\n")
	h, err := header.Parse(block, header.CRLF)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, h.GetIndexesNamed("a"))
	assert.Equal(t, []int{1}, h.GetIndexesNamed("B"))
	assert.Nil(t, h.GetIndexesNamed("c"))
}

func TestHeader_ContentDisposition(t *testing.T) {
	t.Parallel()

	block := []byte("Content-Disposition: form-data; name=\"avatar\"; filename*=utf-8''my%20cat.jpg\r\n" +
		"Content-Type: image/jpeg\r\n")

	h, err := header.Parse(block, header.CRLF)
	require.NoError(t, err)

	d := h.ContentDisposition()

	name, err := d.FieldName()
	assert.NoError(t, err)
	assert.Equal(t, "avatar", name)

	filename, err := d.Filename()
	assert.NoError(t, err)
	assert.Equal(t, "my cat.jpg", filename)
}

func TestHeader_ContentDispositionMissing(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("Content-Type: text/plain\r\n"), header.CRLF)
	require.NoError(t, err)

	d := h.ContentDisposition()

	_, err = d.FieldName()
	assert.ErrorIs(t, err, disposition.ErrNotPresent)

	_, err = d.Filename()
	assert.ErrorIs(t, err, disposition.ErrNotPresent)
}
