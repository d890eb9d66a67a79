package store

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"github.com/guild-net/guild/errors"
)

///////////////////////////////////////////////////////
// From Items to Iterator

type btreeIter struct {
	data    btree.Item
	hasMore bool
	read    chan btree.Item
	stop    chan struct{}
	once    sync.Once
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// ascendBtree creates an iterator over the btree range in ascending order.
// The btree walk runs in a goroutine that is stopped on close().
func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	iter := &btreeIter{
		read: make(chan btree.Item),
		stop: make(chan struct{}),
	}

	go func() {
		defer close(iter.read)
		if start == nil && end == nil {
			bt.Ascend(iter.insert)
		} else if start == nil { // end != nil
			bt.AscendLessThan(bkey{end}, iter.insert)
		} else if end == nil { // start != nil
			bt.AscendGreaterOrEqual(bkey{start}, iter.insert)
		} else { // both != nil
			bt.AscendRange(bkey{start}, bkey{end}, iter.insert)
		}
	}()

	iter.next()
	return iter
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	iter := &btreeIter{
		read: make(chan btree.Item),
		stop: make(chan struct{}),
	}

	go func() {
		defer close(iter.read)
		if start == nil && end == nil {
			bt.Descend(iter.insert)
		} else if start == nil { // end != nil
			bt.DescendLessOrEqual(bkeyLess{end}, iter.insert)
		} else if end == nil { // start != nil
			bt.DescendGreaterThan(bkeyLess{start}, iter.insert)
		} else { // both != nil
			bt.DescendRange(bkeyLess{end}, bkeyLess{start}, iter.insert)
		}
	}()

	iter.next()
	return iter
}

// insert hands a single item over to the reader. It returns false once
// the iterator was closed, which stops the btree walk.
func (b *btreeIter) insert(item btree.Item) bool {
	select {
	case b.read <- item:
		return true
	case <-b.stop:
		return false
	}
}

func (b *btreeIter) wrap(parent Iterator, ascending bool) *itemIter {
	return &itemIter{
		wrap:      b,
		parent:    parent,
		ascending: ascending,
	}
}

func (b *btreeIter) next() {
	b.data, b.hasMore = <-b.read
}

// close stops the producing goroutine and waits until it released the
// btree. Without this synchronization the tree could be modified while
// the walk is still using it.
func (b *btreeIter) close() {
	b.once.Do(func() {
		close(b.stop)
		for range b.read {
		}
	})
}

// get requires this is valid, gets what we are pointing at
func (b *btreeIter) get() keyer {
	return b.data.(keyer)
}

func (b *btreeIter) valid() bool {
	return b.hasMore
}

// itemIter combines an iterator over the cache btree with the iterator of
// the backing store. Updates shadow the parent data, deleted items are
// skipped.
type itemIter struct {
	wrap *btreeIter
	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent Iterator
	// ascending selects which key is served first when both
	// streams hold data
	ascending bool

	// one item read-ahead of the parent iterator, so we can
	// merge the two streams in key order
	parentKey   []byte
	parentValue []byte
	parentDone  bool
	initialized bool
}

//------- public facing interface ------
var _ Iterator = (*itemIter)(nil)

// Next moves the iterator to the next sequential key in the database.
// Deleted entries from the cache layer are skipped.
// Returns ErrIteratorDone at the end.
func (i *itemIter) Next() (key, value []byte, err error) {
	if !i.initialized {
		i.initialized = true
		if err := i.advanceParent(); err != nil {
			return nil, nil, err
		}
	}

	for {
		switch i.firstKey() {
		case none:
			return nil, nil, errors.ErrIteratorDone
		case us:
			item := i.wrap.get()
			i.wrap.next()
			if _, del := item.(deletedItem); del {
				continue
			}
			set := item.(setItem)
			return set.Key(), set.value, nil
		case both:
			// cache shadows the parent data for the same key
			item := i.wrap.get()
			i.wrap.next()
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			if _, del := item.(deletedItem); del {
				continue
			}
			set := item.(setItem)
			return set.Key(), set.value, nil
		case parent:
			key, value = i.parentKey, i.parentValue
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			return key, value, nil
		default:
			return nil, nil, errors.Wrap(errors.ErrHuman, "invalid iterator state")
		}
	}
}

// Release releases the Iterator.
func (i *itemIter) Release() {
	if i.parent != nil {
		i.parent.Release()
	}
	i.wrap.close()
}

// advanceParent reads the next item of the parent iterator into the
// read-ahead buffer.
func (i *itemIter) advanceParent() error {
	if i.parent == nil || i.parentDone {
		i.parentDone = true
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey = key
		i.parentValue = value
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
		i.parentKey = nil
		i.parentValue = nil
	default:
		return err
	}
	return nil
}

// firstKey selects the iterator with the lowest key if any
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if i.parentDone {
		if !i.wrap.valid() {
			return none
		}
		return us
	} else if !i.wrap.valid() {
		return parent
	}

	// both are valid... compare keys....
	parKey := i.parentKey
	usKey := i.wrap.get().Key()

	cmp := bytes.Compare(parKey, usKey)
	if !i.ascending {
		cmp = -cmp
	}
	if cmp < 0 {
		return parent
	} else if cmp > 0 {
		return us
	}
	return both
}
