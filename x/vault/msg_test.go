package vault

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestVaultMsgValidate(t *testing.T) {
	addr := guildtest.NewCondition().Address()
	charterID := guildtest.SequenceID(1)
	collID := guildtest.SequenceID(2)
	tokenID := []byte("relic-0001")

	cases := map[string]struct {
		msg     guild.Msg
		wantErr *errors.Error
	}{
		"valid init": {
			msg: &InitVaultMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: charterID,
				Admin:     addr,
			},
		},
		"init without a charter": {
			msg: &InitVaultMsg{
				Metadata: &guild.Metadata{Schema: 1},
				Admin:    addr,
			},
			wantErr: errors.ErrEmpty,
		},
		"valid deposit": {
			msg: &DepositMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
			},
		},
		"deposit without a token": {
			msg: &DepositMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
			},
			wantErr: errors.ErrEmpty,
		},
		"valid reconcile": {
			msg: &ReconcileMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
			},
		},
		"reconcile without a collection": {
			msg: &ReconcileMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: charterID,
				TokenId:   tokenID,
			},
			wantErr: errors.ErrEmpty,
		},
		"valid internal transfer": {
			msg: &InternalTransferMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
				NewOwner:     addr,
			},
		},
		"internal transfer with a broken owner": {
			msg: &InternalTransferMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
				NewOwner:     guild.Address{0x13, 0x17},
			},
			wantErr: errors.ErrInput,
		},
		"valid withdraw": {
			msg: &WithdrawMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
				Destination:  addr,
			},
		},
		"withdraw without a destination": {
			msg: &WithdrawMsg{
				Metadata:     &guild.Metadata{Schema: 1},
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
			},
			wantErr: errors.ErrInput,
		},
		"missing metadata": {
			msg: &DepositMsg{
				CharterId:    charterID,
				CollectionId: collID,
				TokenId:      tokenID,
			},
			wantErr: errors.ErrMetadata,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}
