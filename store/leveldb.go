package store

import (
	"github.com/iov-one/custody/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBStore is a KVStore persisted on disk using goleveldb.
type LevelDBStore struct {
	db *leveldb.DB
}

var _ CacheableKVStore = (*LevelDBStore)(nil)

// OpenLevelDB opens or creates a database in given directory.
func OpenLevelDB(dir string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %q: %s", dir, err)
	}
	return NewLevelDBStore(db), nil
}

// NewLevelDBStore returns a store using given database instance.
func NewLevelDBStore(db *leveldb.DB) *LevelDBStore {
	return &LevelDBStore{db: db}
}

// Close releases the database.
func (s *LevelDBStore) Close() error {
	return wrapDBErr(s.db.Close())
}

// Get returns nil iff key doesn't exist.
func (s *LevelDBStore) Get(key []byte) ([]byte, error) {
	val, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBErr(err)
	}
	return val, nil
}

// Has checks if a key exists.
func (s *LevelDBStore) Has(key []byte) (bool, error) {
	ok, err := s.db.Has(key, nil)
	return ok, wrapDBErr(err)
}

// Set writes the value under given key.
func (s *LevelDBStore) Set(key, value []byte) error {
	return wrapDBErr(s.db.Put(key, value, nil))
}

// Delete removes given key.
func (s *LevelDBStore) Delete(key []byte) error {
	return wrapDBErr(s.db.Delete(key, nil))
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (s *LevelDBStore) Iterator(start, end []byte) (Iterator, error) {
	models, err := s.collect(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(models), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (s *LevelDBStore) ReverseIterator(start, end []byte) (Iterator, error) {
	models, err := s.collect(start, end)
	if err != nil {
		return nil, err
	}
	reverseModels(models)
	return NewSliceIterator(models), nil
}

func (s *LevelDBStore) collect(start, end []byte) ([]Model, error) {
	it := s.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	defer it.Release()

	var res []Model
	for it.Next() {
		// Iterator buffers are reused by goleveldb.
		key := append([]byte(nil), it.Key()...)
		value := append([]byte(nil), it.Value()...)
		res = append(res, Model{Key: key, Value: value})
	}
	if err := it.Error(); err != nil {
		return nil, wrapDBErr(err)
	}
	return res, nil
}

// NewBatch returns a batch that is written to the database atomically.
func (s *LevelDBStore) NewBatch() Batch {
	return &levelDBBatch{db: s.db, batch: new(leveldb.Batch)}
}

// CacheWrap returns a btree based scratch-pad that is written to the
// database in a single atomic batch.
func (s *LevelDBStore) CacheWrap() KVCacheWrap {
	return newCache(s, s.NewBatch(), nil)
}

type levelDBBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *levelDBBatch) Set(key, value []byte) error {
	b.batch.Put(key, value)
	return nil
}

func (b *levelDBBatch) Delete(key []byte) error {
	b.batch.Delete(key)
	return nil
}

func (b *levelDBBatch) Write() error {
	err := b.db.Write(b.batch, nil)
	b.batch.Reset()
	return wrapDBErr(err)
}

func wrapDBErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(errors.ErrDatabase, err.Error())
}
