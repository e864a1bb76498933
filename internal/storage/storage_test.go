package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := payload{Name: "slot", Count: 3}
	require.NoError(t, s.Write("test", in))

	var out payload
	require.True(t, s.Read("test", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreReadMissingKeepsDefault(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	out := payload{Name: "default", Count: 7}
	assert.False(t, s.Read("absent", &out))
	assert.Equal(t, payload{Name: "default", Count: 7}, out)
}

func TestFileStoreReadCorruptFailsSoft(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var out payload
	assert.False(t, s.Read("bad", &out))
}

func TestFileStoreWriteOverwritesWholeValue(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("test", payload{Name: "first", Count: 1}))
	require.NoError(t, s.Write("test", payload{Name: "second", Count: 2}))

	var out payload
	require.True(t, s.Read("test", &out))
	assert.Equal(t, payload{Name: "second", Count: 2}, out)
}

func TestFileStoreRemove(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("test", payload{Name: "x"}))
	require.NoError(t, s.Remove("test"))

	var out payload
	assert.False(t, s.Read("test", &out))

	// removing an absent slot is not an error
	require.NoError(t, s.Remove("test"))
}

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Write("test", payload{Name: "mem", Count: 9}))

	var out payload
	require.True(t, s.Read("test", &out))
	assert.Equal(t, payload{Name: "mem", Count: 9}, out)

	require.NoError(t, s.Remove("test"))
	assert.False(t, s.Read("test", &out))
}

func TestMemStoreCorruptFailsSoft(t *testing.T) {
	s := NewMemStore()
	s.Corrupt("test")

	out := payload{Name: "default"}
	assert.False(t, s.Read("test", &out))
	assert.Equal(t, "default", out.Name)
}
