package store

import (
	"bytes"

	"github.com/google/btree"
)

// freeListSize is the number of btree nodes kept for reuse by a cache and
// all caches layered on top of it.
const freeListSize = btree.DefaultFreeListSize

// Cached returns a store that supports cache wrapping. A store that already
// does is returned as is, any other gets a btree scratch-pad whose writes
// reach kv through a single kv batch.
func Cached(kv KVStore) CacheableKVStore {
	if c, ok := kv.(CacheableKVStore); ok {
		return c
	}
	return cacheable{KVStore: kv}
}

type cacheable struct {
	KVStore
}

func (c cacheable) CacheWrap() KVCacheWrap {
	return newCache(c.KVStore, c.KVStore.NewBatch(), nil)
}

// MemStore returns an in memory store. Nothing is persisted.
func MemStore() CacheableKVStore {
	return newCache(nothing{}, newOpBatch(nothing{}), nil)
}

// Cache keeps uncommitted writes in a btree on top of a read only parent.
// Every write is also queued in a batch that is flushed to the parent on
// Write.
type Cache struct {
	tree    *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	pending Batch
}

var _ KVCacheWrap = Cache{}

func newCache(parent ReadOnlyKVStore, pending Batch, free *btree.FreeList) Cache {
	if free == nil {
		free = btree.NewFreeList(freeListSize)
	}
	return Cache{
		tree:    btree.NewWithFreeList(2, free),
		free:    free,
		parent:  parent,
		pending: pending,
	}
}

// CacheWrap layers another cache on top of this one. Both share the btree
// node free list.
func (c Cache) CacheWrap() KVCacheWrap {
	return newCache(c, c.NewBatch(), c.free)
}

// NewBatch returns a batch that applies its operations to this cache when
// written.
func (c Cache) NewBatch() Batch {
	return newOpBatch(c)
}

// Write flushes all cached writes to the parent and empties the cache.
func (c Cache) Write() error {
	err := c.pending.Write()
	c.Discard()
	return err
}

// Discard drops all cached writes. The nodes are returned to the free list.
func (c Cache) Discard() {
	c.tree.Clear(true)
}

func (c Cache) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, value: value})
	return c.pending.Set(key, value)
}

func (c Cache) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, deleted: true})
	return c.pending.Delete(key)
}

func (c Cache) Get(key []byte) ([]byte, error) {
	if e, ok := c.lookup(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.parent.Get(key)
}

func (c Cache) Has(key []byte) (bool, error) {
	if e, ok := c.lookup(key); ok {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

func (c Cache) lookup(key []byte) (entry, bool) {
	item := c.tree.Get(entry{key: key})
	if item == nil {
		return entry{}, false
	}
	return item.(entry), true
}

// Iterator returns cached and parent data from the [start, end) range in
// ascending key order.
func (c Cache) Iterator(start, end []byte) (Iterator, error) {
	models, err := c.merge(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(models), nil
}

// ReverseIterator returns cached and parent data from the [start, end)
// range in descending key order.
func (c Cache) ReverseIterator(start, end []byte) (Iterator, error) {
	models, err := c.merge(start, end)
	if err != nil {
		return nil, err
	}
	reverseModels(models)
	return NewSliceIterator(models), nil
}

// merge returns the parent range overlaid with cached writes.
func (c Cache) merge(start, end []byte) ([]Model, error) {
	it, err := c.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	parent, err := ReadAll(it)
	if err != nil {
		return nil, err
	}
	cached := c.entries(start, end)

	res := make([]Model, 0, len(parent)+len(cached))
	for len(parent) > 0 || len(cached) > 0 {
		if len(cached) == 0 || (len(parent) > 0 && bytes.Compare(parent[0].Key, cached[0].key) < 0) {
			res = append(res, parent[0])
			parent = parent[1:]
			continue
		}
		if len(parent) > 0 && bytes.Equal(parent[0].Key, cached[0].key) {
			parent = parent[1:]
		}
		if !cached[0].deleted {
			res = append(res, Model{Key: cached[0].key, Value: cached[0].value})
		}
		cached = cached[1:]
	}
	return res, nil
}

// entries returns cached entries from the [start, end) range in ascending
// key order. A nil bound is open.
func (c Cache) entries(start, end []byte) []entry {
	var res []entry
	collect := func(item btree.Item) bool {
		res = append(res, item.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		c.tree.Ascend(collect)
	case start == nil:
		c.tree.AscendLessThan(entry{key: end}, collect)
	case end == nil:
		c.tree.AscendGreaterOrEqual(entry{key: start}, collect)
	default:
		c.tree.AscendRange(entry{key: start}, entry{key: end}, collect)
	}
	return res
}

// entry is a cached write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
