package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlobStore abstracts the durable key-value store holding questionnaire
// entries. Writes must be visible to subsequent reads; Get returns nil data
// without error for an absent key.
type BlobStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	ListKeys() ([]string, error)
}

// submittedAtKey is the server-assigned timestamp merged into every entry.
const submittedAtKey = "_submitted_at"

// timestampLayout is millisecond-precision ISO-8601 in UTC. The format is
// lexicographically monotonic, which the results ordering relies on.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// SubmissionService appends questionnaire entries to the blob store.
type SubmissionService struct {
	store BlobStore
	now   func() time.Time
	idGen func(n int) string
}

func NewSubmissionService(store BlobStore) *SubmissionService {
	return &SubmissionService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: randomSuffix,
	}
}

// randomSuffix returns n random base36 characters drawn from a fresh UUID's
// random bytes.
func randomSuffix(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	id := uuid.New()
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[int(id[i])%len(alphabet)]
	}
	return string(out)
}

// Submit stores the entry under a fresh key and returns that key. The key
// combines the millisecond timestamp with a random suffix so concurrent
// submissions need no cross-request coordination; uniqueness is
// probabilistic, which is adequate at this form's volume.
func (s *SubmissionService) Submit(entry map[string]any) (string, error) {
	if entry == nil {
		entry = map[string]any{}
	}
	now := s.now()
	key := fmt.Sprintf("%d-%s", now.UnixMilli(), s.idGen(6))
	entry[submittedAtKey] = now.Format(timestampLayout)
	b, err := json.Marshal(entry)
	if err != nil {
		return "", NewInvalidError("encode entry: " + err.Error())
	}
	if err := s.store.Set(key, b); err != nil {
		return "", NewInternalError("store entry: " + err.Error())
	}
	return key, nil
}
