package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/auditkraft/auditkraft/internal/domain"
)

const historyFile = ".auditkraft/history/summaries.json"

// FileHistory implements domain.SummaryHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(workspacePath string, entry domain.SummaryEntry) error {
	entries, err := h.Load(workspacePath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(workspacePath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(workspacePath string) ([]domain.SummaryEntry, error) {
	fp := filepath.Join(workspacePath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.SummaryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
