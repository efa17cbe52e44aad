package custodytest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

// LevelDBStore returns a store instance that is using a filesystem backend
// engine to store the data. Call cleanup to close the database and remove
// all files.
func LevelDBStore(t testing.TB) (db *store.LevelDBStore, cleanup func()) {
	t.Helper()

	dbpath, err := ioutil.TempDir("", "custodytest")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err = store.OpenLevelDB(dbpath)
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot open leveldb: %s", err)
	}
	return db, func() {
		db.Close()
		os.RemoveAll(dbpath)
	}
}

// FailingStore wraps a KVStore and returns Err from every operation for
// which the corresponding flag is set. FailSet covers batch writes as well.
type FailingStore struct {
	custody.KVStore

	Err       error
	FailGet   bool
	FailHas   bool
	FailSet   bool
	FailIter  bool
	FailWrite bool
}

var _ custody.KVStore = (*FailingStore)(nil)

// NewFailingStore returns a FailingStore over an in memory store. Err
// defaults to errors.ErrDatabase.
func NewFailingStore() *FailingStore {
	return &FailingStore{
		KVStore: store.MemStore(),
		Err:     errors.ErrDatabase.New("test failure"),
	}
}

func (s *FailingStore) Get(key []byte) ([]byte, error) {
	if s.FailGet {
		return nil, s.Err
	}
	return s.KVStore.Get(key)
}

func (s *FailingStore) Has(key []byte) (bool, error) {
	if s.FailHas {
		return false, s.Err
	}
	return s.KVStore.Has(key)
}

func (s *FailingStore) Set(key, value []byte) error {
	if s.FailSet {
		return s.Err
	}
	return s.KVStore.Set(key, value)
}

func (s *FailingStore) Delete(key []byte) error {
	if s.FailSet {
		return s.Err
	}
	return s.KVStore.Delete(key)
}

func (s *FailingStore) Iterator(start, end []byte) (custody.Iterator, error) {
	if s.FailIter {
		return nil, s.Err
	}
	return s.KVStore.Iterator(start, end)
}

func (s *FailingStore) ReverseIterator(start, end []byte) (custody.Iterator, error) {
	if s.FailIter {
		return nil, s.Err
	}
	return s.KVStore.ReverseIterator(start, end)
}

func (s *FailingStore) NewBatch() custody.Batch {
	return &failingBatch{Batch: s.KVStore.NewBatch(), store: s}
}

type failingBatch struct {
	custody.Batch
	store *FailingStore
}

func (b *failingBatch) Set(key, value []byte) error {
	if b.store.FailSet {
		return b.store.Err
	}
	return b.Batch.Set(key, value)
}

func (b *failingBatch) Delete(key []byte) error {
	if b.store.FailSet {
		return b.store.Err
	}
	return b.Batch.Delete(key)
}

func (b *failingBatch) Write() error {
	if b.store.FailWrite {
		return b.store.Err
	}
	return b.Batch.Write()
}
