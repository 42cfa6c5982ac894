package resultstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// Loader implements domain.ResultStore over directories of FileResult JSON
// documents, one file per result, as the extraction step writes them.
type Loader struct{}

func New() *Loader { return &Loader{} }

// LoadDir reads every .json document under dir, sorted by name so batches
// replay deterministically.
func (l *Loader) LoadDir(dir string) ([]domain.FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	results := make([]domain.FileResult, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading result %s: %w", path, err)
		}
		var r domain.FileResult
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parsing result %s: %w", path, err)
		}
		if r.File == "" {
			r.File = name
		}
		results = append(results, r)
	}

	return results, nil
}
