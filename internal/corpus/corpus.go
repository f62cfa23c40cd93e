// Package corpus loads the fixed bilingual sentence corpus and serves
// uniformly random prompts from it.
package corpus

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"vaani_web/internal/common"
	"vaani_web/internal/models"
)

// Provider holds the corpus in memory. It is built once at startup and is
// read-only afterwards, so it is safe for concurrent use.
type Provider struct {
	prompts []models.Prompt
}

// Load reads a CSV file with header "Sno,English,Hindi" and returns a
// Provider over its rows.
func Load(path string) (*Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus file %s is empty", path)
	}

	// Skip the header row if present.
	if strings.EqualFold(strings.TrimSpace(records[0][0]), "sno") {
		records = records[1:]
	}

	prompts := make([]models.Prompt, 0, len(records))
	for _, rec := range records {
		prompts = append(prompts, models.Prompt{
			SequenceNumber: strings.TrimSpace(rec[0]),
			English:        strings.TrimSpace(rec[1]),
			Hindi:          strings.TrimSpace(rec[2]),
		})
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("corpus file %s has no rows", path)
	}

	return &Provider{prompts: prompts}, nil
}

// NextPrompt returns one uniformly random prompt. Previous draws are not
// excluded.
func (p *Provider) NextPrompt() (models.Prompt, error) {
	if p == nil || len(p.prompts) == 0 {
		return models.Prompt{}, common.ErrCorpusUnavailable
	}
	return p.prompts[rand.Intn(len(p.prompts))], nil
}

// Size reports how many prompts were loaded.
func (p *Provider) Size() int {
	if p == nil {
		return 0
	}
	return len(p.prompts)
}
