package iavl

import (
	"sync"

	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/store"
)

// lazyIterator streams items from a tree walk that runs in its own
// goroutine. The producer feeds items through add, the consumer takes
// them out via Next.
type lazyIterator struct {
	read chan store.Model
	stop chan struct{}
	once sync.Once
}

var _ store.Iterator = (*lazyIterator)(nil)

func newLazyIterator() *lazyIterator {
	return &lazyIterator{
		read: make(chan store.Model),
		stop: make(chan struct{}),
	}
}

// add hands a single key/value pair over to the reader. It is meant to
// be used as an IterateRange callback, the true return value stops the
// tree walk after the iterator was released.
//
// add must never close the read channel. Only the producing goroutine
// itself knows when the iteration is done and no more items will be
// written.
func (i *lazyIterator) add(key []byte, value []byte) bool {
	m := store.Model{Key: key, Value: value}
	select {
	case i.read <- m:
		return false
	case <-i.stop:
		return true
	}
}

// Next returns the next key/value pair in the iteration order, or
// ErrIteratorDone when all items were consumed.
func (i *lazyIterator) Next() ([]byte, []byte, error) {
	data, hasMore := <-i.read
	if !hasMore {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "lazy iterator")
	}
	return data.Key, data.Value, nil
}

// Release signals the producing goroutine to abandon the tree walk.
func (i *lazyIterator) Release() {
	i.once.Do(func() {
		close(i.stop)
	})
}
