package collectibles

import (
	"bytes"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/orm"
)

func TestCollectiblesModelValidate(t *testing.T) {
	addr := guildtest.NewCondition().Address()

	cases := map[string]struct {
		model    orm.Model
		wantErrs map[string]*errors.Error
	}{
		"valid collection": {
			model: &Collection{
				Metadata: &guild.Metadata{Schema: 1},
				Symbol:   "RELIC",
				Issuer:   addr,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata": nil,
				"Symbol":   nil,
				"Issuer":   nil,
			},
		},
		"lower case symbol": {
			model: &Collection{
				Metadata: &guild.Metadata{Schema: 1},
				Symbol:   "relic",
				Issuer:   addr,
			},
			wantErrs: map[string]*errors.Error{
				"Symbol": errors.ErrInput,
			},
		},
		"collection without an issuer": {
			model: &Collection{
				Metadata: &guild.Metadata{Schema: 1},
				Symbol:   "RELIC",
			},
			wantErrs: map[string]*errors.Error{
				"Issuer": errors.ErrInput,
			},
		},
		"valid token": {
			model: &Token{
				Metadata:   &guild.Metadata{Schema: 1},
				Collection: guildtest.SequenceID(1),
				TokenId:    []byte("relic-7"),
				Owner:      addr,
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":   nil,
				"Collection": nil,
				"TokenId":    nil,
				"Owner":      nil,
			},
		},
		"token without a collection": {
			model: &Token{
				Metadata: &guild.Metadata{Schema: 1},
				TokenId:  []byte("relic-7"),
				Owner:    addr,
			},
			wantErrs: map[string]*errors.Error{
				"Collection": errors.ErrEmpty,
			},
		},
		"token identifier too long": {
			model: &Token{
				Metadata:   &guild.Metadata{Schema: 1},
				Collection: guildtest.SequenceID(1),
				TokenId:    bytes.Repeat([]byte{1}, 33),
				Owner:      addr,
			},
			wantErrs: map[string]*errors.Error{
				"TokenId": errors.ErrInput,
			},
		},
		"token identifier missing": {
			model: &Token{
				Metadata:   &guild.Metadata{Schema: 1},
				Collection: guildtest.SequenceID(1),
				Owner:      addr,
			},
			wantErrs: map[string]*errors.Error{
				"TokenId": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestTokenKey(t *testing.T) {
	key := TokenKey(guildtest.SequenceID(4), []byte("relic-7"))
	assert.Equal(t, append(guildtest.SequenceID(4), []byte("relic-7")...), key)
}
