package treasury

import (
	"strings"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestValidateSendMsg(t *testing.T) {
	addr := guildtest.NewCondition().Address()
	addr2 := guildtest.NewCondition().Address()

	cases := map[string]struct {
		msg     *SendMsg
		field   string
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "GLD"),
				Memo:        "club dues",
			},
		},
		"missing metadata": {
			msg: &SendMsg{
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "GLD"),
			},
			field:   "Metadata",
			wantErr: errors.ErrMetadata,
		},
		"missing amount": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
			},
			field:   "Amount",
			wantErr: errors.ErrAmount,
		},
		"zero amount": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(0, 0, "GLD"),
			},
			field:   "Amount",
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(-10, 0, "GLD"),
			},
			field:   "Amount",
			wantErr: errors.ErrAmount,
		},
		"broken amount ticker": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "this-is-wrong"),
			},
			field:   "Amount",
			wantErr: errors.ErrCurrency,
		},
		"missing source": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "GLD"),
			},
			field:   "Source",
			wantErr: errors.ErrInput,
		},
		"truncated destination": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2[:5],
				Amount:      coin.NewCoinp(10, 0, "GLD"),
			},
			field:   "Destination",
			wantErr: errors.ErrInput,
		},
		"huge memo": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "GLD"),
				Memo:        strings.Repeat("a", maxMemoSize+1),
			},
			field:   "Memo",
			wantErr: errors.ErrInput,
		},
		"huge ref": {
			msg: &SendMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "GLD"),
				Ref:         []byte(strings.Repeat("a", maxRefSize+1)),
			},
			field:   "Ref",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.FieldError(t, err, tc.field, tc.wantErr)
			}
		})
	}
}

func TestSendMsgDefaultSource(t *testing.T) {
	addr := guildtest.NewCondition().Address()
	addr2 := guildtest.NewCondition().Address()

	msg := &SendMsg{
		Metadata:    &guild.Metadata{Schema: 1},
		Destination: addr2,
		Amount:      coin.NewCoinp(10, 0, "GLD"),
	}
	withSource := msg.DefaultSource(addr)
	assert.Equal(t, guild.Address(addr), withSource.Source)
	assert.Equal(t, guild.Address(addr2), withSource.Destination)

	// An existing source must not be replaced.
	same := withSource.DefaultSource(addr2)
	assert.Equal(t, guild.Address(addr), same.Source)
}

func TestValidateFeeInfo(t *testing.T) {
	addr := guildtest.NewCondition().Address()

	cases := map[string]struct {
		info    *FeeInfo
		field   string
		wantErr *errors.Error
	}{
		"valid fee": {
			info: &FeeInfo{
				Payer: addr,
				Fees:  coin.NewCoinp(1, 0, "GLD"),
			},
		},
		"nil fee info": {
			info:    nil,
			wantErr: errors.ErrInput,
		},
		"missing fees": {
			info:    &FeeInfo{Payer: addr},
			field:   "Fees",
			wantErr: errors.ErrEmpty,
		},
		"negative fees": {
			info: &FeeInfo{
				Payer: addr,
				Fees:  coin.NewCoinp(-1, 0, "GLD"),
			},
			field:   "Fees",
			wantErr: errors.ErrAmount,
		},
		"missing payer": {
			info: &FeeInfo{
				Fees: coin.NewCoinp(1, 0, "GLD"),
			},
			field:   "Payer",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.info.Validate()
			switch {
			case tc.wantErr == nil:
				assert.Nil(t, err)
			case tc.field == "":
				assert.IsErr(t, tc.wantErr, err)
			default:
				assert.FieldError(t, err, tc.field, tc.wantErr)
			}
		})
	}
}

func TestValidateUpdateConfigurationMsg(t *testing.T) {
	addr := guildtest.NewCondition().Address()

	cases := map[string]struct {
		msg     *UpdateConfigurationMsg
		field   string
		wantErr *errors.Error
	}{
		"valid patch": {
			msg: &UpdateConfigurationMsg{
				Metadata: &guild.Metadata{Schema: 1},
				Patch: &Configuration{
					Collector:  addr,
					MinimalFee: coin.NewCoin(0, 100, "GLD"),
				},
			},
		},
		"empty patch is allowed, zero fields are skipped": {
			msg: &UpdateConfigurationMsg{
				Metadata: &guild.Metadata{Schema: 1},
				Patch:    &Configuration{},
			},
		},
		"missing patch": {
			msg: &UpdateConfigurationMsg{
				Metadata: &guild.Metadata{Schema: 1},
			},
			field:   "Patch",
			wantErr: errors.ErrEmpty,
		},
		"negative minimal fee": {
			msg: &UpdateConfigurationMsg{
				Metadata: &guild.Metadata{Schema: 1},
				Patch: &Configuration{
					MinimalFee: coin.NewCoin(-4, 0, "GLD"),
				},
			},
			field:   "Patch.MinimalFee",
			wantErr: errors.ErrAmount,
		},
		"broken collector": {
			msg: &UpdateConfigurationMsg{
				Metadata: &guild.Metadata{Schema: 1},
				Patch: &Configuration{
					Collector: []byte{1, 2, 3},
				},
			},
			field:   "Patch.Collector",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.FieldError(t, err, tc.field, tc.wantErr)
			}
		})
	}
}
