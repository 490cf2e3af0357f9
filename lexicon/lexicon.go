// Package lexicon loads word lists for the solver. The solver itself takes
// an already-materialized slice of words; the file handling lives here.
package lexicon

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggler/config"
)

// LoadWordList reads a lexicon file with one word per line. Only the first
// whitespace-separated field of each line is used, so files that carry
// definitions after the word work as-is. Words are uppercased; no length or
// character filtering happens here (the trie applies the length policy).
func LoadWordList(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			words = append(words, strings.ToUpper(fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("filename", filename).Int("words", len(words)).
		Msg("read word list")
	return words, nil
}

// NamedWordList resolves a lexicon name like "NWL23" to a .txt file inside
// the configured data path and loads it.
func NamedWordList(cfg *config.Config, name string) ([]string, error) {
	filename := filepath.Join(cfg.GetString("data-path"), name+".txt")
	return LoadWordList(filename)
}
