package runtime

import (
	"selection-lab/errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLexiconLoader_LoadAll(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"lexicon/city.txt":     {Data: []byte("paris\r\nlondon\n\nparis\n")},
		"lexicon/greeting.txt": {Data: []byte("  hello \nhi\n")},
		"lexicon/README.md":    {Data: []byte("not a word list")},
	}

	data, err := NewLexiconLoader(fsys).LoadAll("lexicon")

	req.NoError(err)
	req.Equal([]string{"city", "greeting"}, data.Labels)
	req.Equal([]string{"paris", "london"}, data.Entries["city"])
	req.Equal([]string{"hello", "hi"}, data.Entries["greeting"])
	req.Equal(4, data.Words)
}

func TestLexiconLoader_LoadAll_Empty(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"lexicon/empty.txt": {Data: []byte("\n\n")},
	}

	_, err := NewLexiconLoader(fsys).LoadAll("lexicon")

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestLoadDefaultLexicon(t *testing.T) {
	req := require.New(t)

	data, err := LoadDefaultLexicon()

	req.NoError(err)
	req.Contains(data.Labels, "greeting")
	req.Contains(data.Entries["city"], "paris")
}
