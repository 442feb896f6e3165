package services

import (
	"testing"
)

func TestListAllOrdersDescending(t *testing.T) {
	store := newBlobStubStore()
	store.blobs["a"] = []byte(`{"nom_prenom":"Ancien","_submitted_at":"2024-01-01T00:00:00Z"}`)
	store.blobs["b"] = []byte(`{"nom_prenom":"Récent","_submitted_at":"2024-06-01T00:00:00Z"}`)

	entries, err := NewResultsService(store).ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["nom_prenom"] != "Récent" {
		t.Fatalf("most recent entry should come first: %v", entries)
	}
}

func TestListAllSkipsCorruptAndEmpty(t *testing.T) {
	store := newBlobStubStore()
	store.blobs["good"] = []byte(`{"_submitted_at":"2024-03-01T00:00:00Z"}`)
	store.blobs["corrupt"] = []byte(`{not json`)
	store.blobs["empty"] = nil
	store.blobs["null"] = []byte(`null`)

	entries, err := NewResultsService(store).ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("corrupt entries should be skipped, got %d entries", len(entries))
	}
}

func TestListAllMissingTimestampSortsLast(t *testing.T) {
	store := newBlobStubStore()
	store.blobs["a"] = []byte(`{"nom_prenom":"Sans date"}`)
	store.blobs["b"] = []byte(`{"nom_prenom":"Daté","_submitted_at":"2024-06-01T00:00:00Z"}`)

	entries, err := NewResultsService(store).ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if entries[len(entries)-1]["nom_prenom"] != "Sans date" {
		t.Fatalf("entry without timestamp should sort last: %v", entries)
	}
}
