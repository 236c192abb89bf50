package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadCSV builds a Directory from a roster file with "name,phone"
// rows. A header row is skipped when its phone column holds no digits.
// Rows missing either column are ignored rather than failing the whole
// roster; a stale directory entry is an operator problem, a half-empty
// file should not abort extraction setup.
func LoadCSV(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}

	dir := NewDirectory()
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		phone := strings.TrimSpace(rec[1])
		if i == 0 && Digits(phone) == "" {
			continue // header
		}
		dir.Add(name, phone)
	}
	return dir, nil
}
