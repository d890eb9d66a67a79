package orm

import (
	"reflect"

	"github.com/guild-net/guild/errors"
)

// ValidateSequence returns an error if this is not an 8-byte
// as expected for orm.IDGenBucket
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}

// WithLimit returns an iterator that loads at most limit elements before
// reporting that it is exhausted.
func WithLimit(iter SerialModelIterator, limit int) (SerialModelIterator, error) {
	if limit < 1 {
		return nil, errors.Wrapf(errors.ErrInput, "limit must be a positive number: %d", limit)
	}
	return &limitedSerialModelIterator{iterator: iter, remaining: limit}, nil
}

type limitedSerialModelIterator struct {
	iterator  SerialModelIterator
	remaining int
}

var _ SerialModelIterator = (*limitedSerialModelIterator)(nil)

func (i *limitedSerialModelIterator) LoadNext(dest SerialModel) error {
	if i.remaining < 1 {
		return errors.ErrIteratorDone
	}
	if err := i.iterator.LoadNext(dest); err != nil {
		return err
	}
	i.remaining--
	return nil
}

func (i *limitedSerialModelIterator) Release() {
	i.iterator.Release()
}

// ToSlice consumes the iterator and loads all elements into the destination
// slice. Given destination must be a pointer to a slice of SerialModel
// pointers (i.e. *[]*MyModel). The iterator is released before returning.
func ToSlice(iter SerialModelIterator, destination SerialModelSlicePtr) error {
	defer iter.Release()

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer to slice of SerialModels")
	}
	if dest.IsNil() {
		return errors.Wrap(errors.ErrImmutable, "got nil pointer")
	}
	dest = dest.Elem()
	if dest.Kind() != reflect.Slice {
		return errors.Wrap(errors.ErrType, "destination must be a pointer to slice of SerialModels")
	}
	if dest.Type().Elem().Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination slice must contain pointers to SerialModels")
	}
	model := dest.Type().Elem().Elem()

	for {
		item, ok := reflect.New(model).Interface().(SerialModel)
		if !ok {
			return errors.Wrapf(errors.ErrType, "%s is not a SerialModel", model)
		}
		switch err := iter.LoadNext(item); {
		case err == nil:
			dest.Set(reflect.Append(dest, reflect.ValueOf(item)))
		case errors.ErrIteratorDone.Is(err):
			return nil
		default:
			return err
		}
	}
}
