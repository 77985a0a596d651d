// Package synonyms loads a query expander from a line-delimited JSON file of
// {"term": "...", "syns": [...]} records.
package synonyms

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/amankumarsingh77/invertex/internal/search"
)

type record struct {
	Term string   `json:"term"`
	Syns []string `json:"syns"`
}

// Load reads the synonyms file at path into a search.MapExpander. Lines
// whose syns list is empty are ignored, per the format's contract.
func Load(path string) (search.MapExpander, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("synonyms: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a synonyms file from r. Exported for testing without a file
// on disk.
func Read(r io.Reader) (search.MapExpander, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	expander := make(search.MapExpander)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("synonyms: malformed line: %w", err)
		}
		if len(rec.Syns) == 0 {
			continue
		}
		expander[rec.Term] = rec.Syns
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("synonyms: %w", err)
	}
	return expander, nil
}
