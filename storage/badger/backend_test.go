package badger

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
)

func TestOpenBackendInMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}
	defer backend.Close()

	if backend.IsClosed() {
		t.Fatal("Expected backend to be open")
	}
}

func TestOpenBackendCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/db"

	backend, err := OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()
}

func TestWithTxDiscardsOnError(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	key := []byte("test:key")

	err = backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(key, []byte("value")); err != nil {
			return err
		}
		// Returning without commit discards the transaction
		return nil
	}, true)
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}

	err = backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		if err != badger.ErrKeyNotFound {
			t.Fatalf("Expected key to be absent after discard, got %v", err)
		}
		return nil
	}, false)
	if err != nil {
		t.Fatalf("Read transaction failed: %v", err)
	}
}

func TestGetSequence(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	seq, err := backend.GetSequence("test-seq")
	if err != nil {
		t.Fatalf("Failed to get sequence: %v", err)
	}
	defer seq.Release()

	a, err := seq.Next()
	if err != nil {
		t.Fatalf("Failed to get next sequence value: %v", err)
	}
	b, err := seq.Next()
	if err != nil {
		t.Fatalf("Failed to get next sequence value: %v", err)
	}
	if b <= a {
		t.Fatalf("Expected increasing sequence, got %d then %d", a, b)
	}
}
