package orm

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

// queryPrefix returns all models with keys that begin with the given prefix.
// Iteration happens in lexicographical order.
func queryPrefix(db guild.ReadOnlyKVStore, prefix []byte) ([]guild.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	defer itr.Release()

	var res []guild.Model
	for {
		k, v, err := itr.Next()
		switch {
		case err == nil:
			res = append(res, guild.Model{Key: k, Value: v})
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
