package guildtest

import "encoding/binary"

// SequenceID returns an ID encoded as if it was generated by a bucket
// sequence. This function is helpful for testing buckets that use an ID
// generated by a sequence as the key.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
