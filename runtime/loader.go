package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"selection-lab/errors"
	"sort"
	"strings"
)

//go:embed lexicon/*.txt
var lexiconFolder embed.FS

// LexiconData maps every label to its words, loaded from one file per label.
type LexiconData struct {
	Entries map[string][]string
	Labels  []string
	Words   int
}

// LexiconLoader reads labelled word lists from a filesystem.
type LexiconLoader struct {
	fs fs.FS
}

func NewLexiconLoader(f fs.FS) *LexiconLoader {
	return &LexiconLoader{fs: f}
}

// LoadDefaultLexicon loads the word lists shipped with the binary.
func LoadDefaultLexicon() (*LexiconData, error) {
	return NewLexiconLoader(lexiconFolder).LoadAll("lexicon")
}

// LoadAll reads every .txt file of dir, the file name being the label
// (e.g. "city.txt" -> "city"). Blank lines are skipped, duplicates removed.
func (l *LexiconLoader) LoadAll(dir string) (*LexiconData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	data := &LexiconData{Entries: make(map[string][]string)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		label := strings.TrimSuffix(entry.Name(), ".txt")
		content, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		words, err := readWords(content)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			continue
		}
		data.Entries[label] = words
		data.Labels = append(data.Labels, label)
		data.Words += len(words)
	}

	if data.Words == 0 {
		return nil, errors.ErrEmptyWords
	}
	sort.Strings(data.Labels)
	return data, nil
}

// readWords uses a scanner so both \n and \r\n line endings work.
func readWords(content []byte) ([]string, error) {
	unique := make(map[string]struct{})
	var words []string

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := unique[line]; ok {
			continue
		}
		unique[line] = struct{}{}
		words = append(words, line)
	}
	return words, scanner.Err()
}
