package onboard

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestOnboardMsgValidate(t *testing.T) {
	member := guildtest.NewCondition().Address()

	cases := map[string]struct {
		msg      guild.Msg
		wantErrs map[string]*errors.Error
	}{
		"valid token message": {
			msg: &OnboardTokenMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(1),
				Member:    member,
				Amount:    coin.NewCoin(250, 0, "WGLD"),
				Nonce:     1,
				Signature: make([]byte, couponSigLength),
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":  nil,
				"CharterId": nil,
				"Member":    nil,
				"Amount":    nil,
				"Nonce":     nil,
				"Signature": nil,
			},
		},
		"valid native message": {
			msg: &OnboardNativeMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(1),
				Member:    member,
				Amount:    coin.NewCoin(250, 0, "GLD"),
				Nonce:     7,
				Signature: make([]byte, couponSigLength),
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":  nil,
				"CharterId": nil,
				"Member":    nil,
				"Amount":    nil,
				"Nonce":     nil,
				"Signature": nil,
			},
		},
		"missing charter": {
			msg: &OnboardTokenMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				Member:    member,
				Amount:    coin.NewCoin(250, 0, "WGLD"),
				Nonce:     1,
				Signature: make([]byte, couponSigLength),
			},
			wantErrs: map[string]*errors.Error{
				"CharterId": errors.ErrEmpty,
			},
		},
		"broken member address": {
			msg: &OnboardTokenMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(1),
				Member:    guild.Address{0x13, 0x17},
				Amount:    coin.NewCoin(250, 0, "WGLD"),
				Nonce:     1,
				Signature: make([]byte, couponSigLength),
			},
			wantErrs: map[string]*errors.Error{
				"Member": errors.ErrInput,
			},
		},
		"zero amount": {
			msg: &OnboardTokenMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(1),
				Member:    member,
				Amount:    coin.NewCoin(0, 0, "WGLD"),
				Nonce:     1,
				Signature: make([]byte, couponSigLength),
			},
			wantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"zero nonce": {
			msg: &OnboardTokenMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(1),
				Member:    member,
				Amount:    coin.NewCoin(250, 0, "WGLD"),
				Nonce:     0,
				Signature: make([]byte, couponSigLength),
			},
			wantErrs: map[string]*errors.Error{
				"Nonce": errors.ErrInput,
			},
		},
		"short signature": {
			msg: &OnboardTokenMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(1),
				Member:    member,
				Amount:    coin.NewCoin(250, 0, "WGLD"),
				Nonce:     1,
				Signature: make([]byte, couponSigLength-1),
			},
			wantErrs: map[string]*errors.Error{
				"Signature": errors.ErrInput,
			},
		},
		"configuration update without a patch": {
			msg: &UpdateConfigurationMsg{
				Metadata: &guild.Metadata{Schema: 1},
			},
			wantErrs: map[string]*errors.Error{
				"Metadata": nil,
				"Patch":    errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
