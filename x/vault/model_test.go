package vault

import (
	"bytes"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/orm"
)

func TestVaultModelValidate(t *testing.T) {
	addr := guildtest.NewCondition().Address()
	charterID := guildtest.SequenceID(1)
	collID := guildtest.SequenceID(2)

	cases := map[string]struct {
		model   orm.Model
		wantErr *errors.Error
	}{
		"valid vault": {
			model: &Vault{
				Metadata:    &guild.Metadata{Schema: 1},
				Charter:     charterID,
				Admin:       addr,
				Collections: [][]byte{collID},
			},
		},
		"vault without a charter": {
			model: &Vault{
				Metadata: &guild.Metadata{Schema: 1},
				Admin:    addr,
			},
			wantErr: errors.ErrEmpty,
		},
		"vault with an empty collection entry": {
			model: &Vault{
				Metadata:    &guild.Metadata{Schema: 1},
				Charter:     charterID,
				Admin:       addr,
				Collections: [][]byte{collID, nil},
			},
			wantErr: errors.ErrEmpty,
		},
		"valid shelf": {
			model: &Shelf{
				Metadata:   &guild.Metadata{Schema: 1},
				Charter:    charterID,
				Collection: collID,
				TokenIds:   [][]byte{[]byte("relic-0001")},
			},
		},
		"shelf must not be empty": {
			model: &Shelf{
				Metadata:   &guild.Metadata{Schema: 1},
				Charter:    charterID,
				Collection: collID,
			},
			wantErr: errors.ErrEmpty,
		},
		"valid holding": {
			model: &Holding{
				Metadata:   &guild.Metadata{Schema: 1},
				Charter:    charterID,
				Collection: collID,
				TokenId:    []byte("relic-0001"),
				Owner:      GuildOwnerCondition(charterID).Address(),
			},
		},
		"holding without a token": {
			model: &Holding{
				Metadata:   &guild.Metadata{Schema: 1},
				Charter:    charterID,
				Collection: collID,
				Owner:      addr,
			},
			wantErr: errors.ErrEmpty,
		},
		"holding with a broken owner": {
			model: &Holding{
				Metadata:   &guild.Metadata{Schema: 1},
				Charter:    charterID,
				Collection: collID,
				TokenId:    []byte("relic-0001"),
				Owner:      guild.Address{0x13, 0x17},
			},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.model.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestVaultKeys(t *testing.T) {
	charterID := guildtest.SequenceID(1)
	collID := guildtest.SequenceID(2)
	tokenID := []byte("relic-0001")

	shelfKey := ShelfKey(charterID, collID)
	assert.Equal(t, append(append([]byte{}, charterID...), collID...), shelfKey)

	holdingKey := HoldingKey(charterID, collID, tokenID)
	assert.Equal(t, append(append(append([]byte{}, charterID...), collID...), tokenID...), holdingKey)
}

func TestDerivedConditions(t *testing.T) {
	a := guildtest.SequenceID(1)
	b := guildtest.SequenceID(2)

	// The two accounts of one vault must never collide, and accounts
	// of different vaults must not either.
	addrs := []guild.Address{
		CustodyCondition(a).Address(),
		GuildOwnerCondition(a).Address(),
		CustodyCondition(b).Address(),
		GuildOwnerCondition(b).Address(),
	}
	for i := range addrs {
		assert.Nil(t, addrs[i].Validate())
		for j := i + 1; j < len(addrs); j++ {
			if bytes.Equal(addrs[i], addrs[j]) {
				t.Fatalf("address %d and %d collide: %s", i, j, addrs[i])
			}
		}
	}

	// Derivation is stable.
	assert.Equal(t, CustodyCondition(a).Address(), CustodyCondition(a).Address())
}
