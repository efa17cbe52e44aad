package store

import (
	"github.com/iov-one/custody/errors"
)

// SliceIterator iterates over preloaded models.
type SliceIterator struct {
	data []Model
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator returns an iterator over given models, in slice order.
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{data: data}
}

// Next returns the next key value pair or errors.ErrIteratorDone once all
// data was read.
func (s *SliceIterator) Next() (key, value []byte, err error) {
	if len(s.data) == 0 {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[0]
	s.data = s.data[1:]
	return m.Key, m.Value, nil
}

func (s *SliceIterator) Release() {
	s.data = nil
}

// ReadAll consumes given iterator and returns all key value pairs it
// provides. The iterator is released.
func ReadAll(it Iterator) ([]Model, error) {
	defer it.Release()

	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, Model{Key: key, Value: value})
	}
}

func reverseModels(models []Model) {
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
}

// nothing is an always empty store, the bottom layer of MemStore.
type nothing struct{}

func (nothing) Get(key []byte) ([]byte, error) { return nil, nil }
func (nothing) Has(key []byte) (bool, error) { return false, nil }
func (nothing) Set(key, value []byte) error { return nil }
func (nothing) Delete(key []byte) error { return nil }
func (nothing) NewBatch() Batch { return newOpBatch(nothing{}) }
func (nothing) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}
func (nothing) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

// op is a queued set, or a delete when value is nil.
type op struct {
	key   []byte
	value []byte
}

// opBatch queues operations and applies them one by one on Write. It is
// not atomic and must only front in memory stores.
type opBatch struct {
	out SetDeleter
	ops []op
}

var _ Batch = (*opBatch)(nil)

func newOpBatch(out SetDeleter) *opBatch {
	return &opBatch{out: out}
}

func (b *opBatch) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	b.ops = append(b.ops, op{key: key, value: value})
	return nil
}

func (b *opBatch) Delete(key []byte) error {
	b.ops = append(b.ops, op{key: key})
	return nil
}

func (b *opBatch) Write() error {
	for _, o := range b.ops {
		var err error
		if o.value == nil {
			err = b.out.Delete(o.key)
		} else {
			err = b.out.Set(o.key, o.value)
		}
		if err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}
