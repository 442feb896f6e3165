package services

import (
	"encoding/json"
	"sort"
)

// ResultsService reads stored questionnaire entries back for reporting. It
// never writes.
type ResultsService struct {
	store BlobStore
}

func NewResultsService(store BlobStore) *ResultsService {
	return &ResultsService{store: store}
}

// ListAll returns every stored entry, most recent first. Keys whose value is
// absent or undecodable are skipped rather than failing the whole listing.
func (s *ResultsService) ListAll() ([]map[string]any, error) {
	keys, err := s.store.ListKeys()
	if err != nil {
		return nil, NewInternalError("list keys: " + err.Error())
	}
	entries := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		b, err := s.store.Get(key)
		if err != nil || len(b) == 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal(b, &entry); err != nil || entry == nil {
			continue
		}
		entries = append(entries, entry)
	}
	// Descending string compare is chronological because the timestamp
	// format is ISO-8601; entries without a timestamp sort last.
	sort.SliceStable(entries, func(i, j int) bool {
		return submittedAt(entries[i]) > submittedAt(entries[j])
	})
	return entries, nil
}

func submittedAt(entry map[string]any) string {
	if v, ok := entry[submittedAtKey].(string); ok {
		return v
	}
	return ""
}
