package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/store"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		init       int64
		increments int64
	}{
		0: {"accs", "id", 0, 22},
		1: {"accs", "owner", 0, 11},
		2: {"accs", "id", 22, 18},
		3: {"tokens", "id", 0, 77},
		4: {"accs", "owner", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)

			start, orig, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.init, start)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				assert.Nil(t, err)
			}
			expect := tc.init + tc.increments
			assert.Equal(t, expect, val)

			// Latest must report the last handed out value without
			// modifying the counter state.
			last, raw, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, expect, last)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			assert.Equal(t, 1, bytes.Compare(raw, orig))
		})
	}
}

func TestSequenceNextValBytesOrder(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("cash", "id")

	// Generated keys must grow also when compared by bytes, even when
	// crossing a single byte boundary.
	var prev []byte
	for i := 0; i < 1000; i++ {
		raw, err := s.NextVal(db)
		assert.Nil(t, err)
		if bytes.Compare(raw, prev) != 1 {
			t.Fatalf("sequence value %x is not greater than %x", raw, prev)
		}
		prev = raw
	}
}
