package directory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"metrobus.islamabad.org/internal/models"
)

// LineRecords is one line's station record set, as produced by the
// geographic survey tooling (an external collaborator).
type LineRecords struct {
	Line     models.MetroLine
	Stations []models.Station
}

// LoadLineRecords reads a line's station records from a JSON document. A
// missing or unreadable document is an error for the caller to log; the
// directory itself can be built from whichever record sets loaded.
func LoadLineRecords(path string, line models.MetroLine) (LineRecords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LineRecords{}, fmt.Errorf("reading station records: %w", err)
	}

	var stations []models.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return LineRecords{}, fmt.Errorf("decoding station records for %s: %w", line, err)
	}

	return LineRecords{Line: line, Stations: stations}, nil
}

// LoadDirectory builds a Directory from the record documents that loaded
// successfully, logging and skipping the ones that did not.
func LoadDirectory(logger *slog.Logger, sources map[models.MetroLine]string) *Directory {
	var sets []LineRecords
	for _, line := range []models.MetroLine{models.LineGreen, models.LineBlue} {
		path, ok := sources[line]
		if !ok || path == "" {
			continue
		}
		set, err := LoadLineRecords(path, line)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping station records", "line", line, "error", err)
			}
			continue
		}
		sets = append(sets, set)
	}
	return New(sets...)
}
