package charter

import (
	"context"
	"testing"
	"time"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
)

func TestCreateCharterHandler(t *testing.T) {
	admin := guildtest.NewCondition()
	kyc := guildtest.NewCondition()

	goodMsg := &CreateCharterMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		Title:     "North Sea Traders",
		KycSigner: kyc.Address(),
		UnitPrice: coin.NewCoin(5, 0, "GLD"),
		MaxUnits:  100,
		TopUp:     true,
	}

	cases := map[string]struct {
		signers        []guild.Condition
		msg            guild.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"wrong message type": {
			signers:        []guild.Condition{admin},
			msg:            &guildtest.Msg{RoutePath: "test/any"},
			wantCheckErr:   errors.ErrType,
			wantDeliverErr: errors.ErrType,
		},
		"broken message": {
			signers:        []guild.Condition{admin},
			msg:            &CreateCharterMsg{Metadata: &guild.Metadata{Schema: 1}},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"missing signature": {
			msg:            goodMsg,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"all good": {
			signers: []guild.Condition{admin},
			msg:     goodMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "charter")

			now := time.Now().UTC()
			ctx := guild.WithBlockTime(context.Background(), now)

			auth := &guildtest.Auth{Signers: tc.signers}
			h := CreateCharterHandler{auth: auth, charters: NewCharterBucket()}
			tx := &guildtest.Tx{Msg: tc.msg}

			cres, err := h.Check(ctx, db, tx)
			if tc.wantCheckErr != nil {
				assert.IsErr(t, tc.wantCheckErr, err)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, createCharterCost, cres.GasAllocated)
			}

			res, err := h.Deliver(ctx, db, tx)
			if tc.wantDeliverErr != nil {
				assert.IsErr(t, tc.wantDeliverErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, guildtest.SequenceID(1), res.Data)

			var c Charter
			assert.Nil(t, NewCharterBucket().One(db, res.Data, &c))
			assert.Equal(t, "North Sea Traders", c.Title)
			assert.Equal(t, admin.Address(), c.Admin)
			assert.Equal(t, kyc.Address(), c.KycSigner)
			assert.Equal(t, TreasuryCondition(res.Data).Address(), c.Treasury)
			assert.Equal(t, guild.AsUnixTime(now), c.CreatedAt)
			assert.Equal(t, true, c.TopUp)
		})
	}
}

func TestUpdateCharterHandler(t *testing.T) {
	admin := guildtest.NewCondition()
	officer := guildtest.NewCondition()
	stranger := guildtest.NewCondition()

	charterID := guildtest.SequenceID(1)

	updateMsg := &UpdateCharterMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: charterID,
		Title:     "North Sea Traders II",
		KycSigner: admin.Address(),
		UnitPrice: coin.NewCoin(7, 0, "GLD"),
		MaxUnits:  50,
		TopUp:     false,
	}

	cases := map[string]struct {
		signers        []guild.Condition
		msg            guild.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"admin can update": {
			signers: []guild.Condition{admin},
			msg:     updateMsg,
		},
		"officer with admin permission can update": {
			signers: []guild.Condition{officer},
			msg:     updateMsg,
		},
		"stranger cannot update": {
			signers:        []guild.Condition{stranger},
			msg:            updateMsg,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown charter": {
			signers: []guild.Condition{admin},
			msg: &UpdateCharterMsg{
				Metadata:  &guild.Metadata{Schema: 1},
				CharterId: guildtest.SequenceID(666),
				Title:     "North Sea Traders II",
				KycSigner: admin.Address(),
				UnitPrice: coin.NewCoin(7, 0, "GLD"),
				MaxUnits:  50,
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "charter")

			charters := NewCharterBucket()
			_, err := charters.Put(db, charterID, &Charter{
				Metadata:  &guild.Metadata{Schema: 1},
				Title:     "North Sea Traders",
				Admin:     admin.Address(),
				KycSigner: admin.Address(),
				UnitPrice: coin.NewCoin(5, 0, "GLD"),
				MaxUnits:  100,
				TopUp:     true,
				Treasury:  TreasuryCondition(charterID).Address(),
				CreatedAt: 1565700000,
			})
			assert.Nil(t, err)
			_, err = NewOfficerBucket().Put(db, OfficerKey(charterID, officer.Address()), &Officer{
				Metadata:    &guild.Metadata{Schema: 1},
				Charter:     charterID,
				Address:     officer.Address(),
				Permissions: []Permission{Permission_ADMIN},
			})
			assert.Nil(t, err)

			auth := &guildtest.Auth{Signers: tc.signers}
			h := UpdateCharterHandler{auth: auth, charters: charters, gate: NewGatekeeper()}
			tx := &guildtest.Tx{Msg: tc.msg}

			if _, err := h.Check(nil, db, tx); tc.wantCheckErr != nil {
				assert.IsErr(t, tc.wantCheckErr, err)
			} else {
				assert.Nil(t, err)
			}

			_, err = h.Deliver(nil, db, tx)
			if tc.wantDeliverErr != nil {
				assert.IsErr(t, tc.wantDeliverErr, err)
				return
			}
			assert.Nil(t, err)

			var c Charter
			assert.Nil(t, charters.One(db, charterID, &c))
			assert.Equal(t, "North Sea Traders II", c.Title)
			assert.Equal(t, coin.NewCoin(7, 0, "GLD"), c.UnitPrice)
			assert.Equal(t, int64(50), c.MaxUnits)
			assert.Equal(t, false, c.TopUp)
			// The admin and the treasury address must survive any update.
			assert.Equal(t, admin.Address(), c.Admin)
			assert.Equal(t, TreasuryCondition(charterID).Address(), c.Treasury)
		})
	}
}

func TestSetOfficerHandler(t *testing.T) {
	admin := guildtest.NewCondition()
	officer := guildtest.NewCondition()
	stranger := guildtest.NewCondition()

	charterID := guildtest.SequenceID(1)

	grantMsg := &SetOfficerMsg{
		Metadata:    &guild.Metadata{Schema: 1},
		CharterId:   charterID,
		Officer:     officer.Address(),
		Permissions: []Permission{Permission_CUSTODY_TRANSFER, Permission_CUSTODY_WITHDRAW},
	}
	revokeMsg := &SetOfficerMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: charterID,
		Officer:   officer.Address(),
	}

	cases := map[string]struct {
		signers        []guild.Condition
		appointed      bool
		msg            guild.Msg
		wantDeliverErr *errors.Error
		wantPerms      []Permission
	}{
		"admin can grant": {
			signers:   []guild.Condition{admin},
			msg:       grantMsg,
			wantPerms: []Permission{Permission_CUSTODY_TRANSFER, Permission_CUSTODY_WITHDRAW},
		},
		"grant replaces the previous set": {
			signers:   []guild.Condition{admin},
			appointed: true,
			msg: &SetOfficerMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				CharterId:   charterID,
				Officer:     officer.Address(),
				Permissions: []Permission{Permission_CUSTODY_WITHDRAW},
			},
			wantPerms: []Permission{Permission_CUSTODY_WITHDRAW},
		},
		"empty set revokes": {
			signers:   []guild.Condition{admin},
			appointed: true,
			msg:       revokeMsg,
		},
		"revoking an unknown officer is a noop": {
			signers: []guild.Condition{admin},
			msg:     revokeMsg,
		},
		"stranger cannot grant": {
			signers:        []guild.Condition{stranger},
			msg:            grantMsg,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown permission value": {
			signers: []guild.Condition{admin},
			msg: &SetOfficerMsg{
				Metadata:    &guild.Metadata{Schema: 1},
				CharterId:   charterID,
				Officer:     officer.Address(),
				Permissions: []Permission{Permission_INVALID},
			},
			wantDeliverErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "charter")

			charters := NewCharterBucket()
			officers := NewOfficerBucket()
			_, err := charters.Put(db, charterID, &Charter{
				Metadata:  &guild.Metadata{Schema: 1},
				Title:     "North Sea Traders",
				Admin:     admin.Address(),
				KycSigner: admin.Address(),
				UnitPrice: coin.NewCoin(5, 0, "GLD"),
				MaxUnits:  100,
				Treasury:  TreasuryCondition(charterID).Address(),
				CreatedAt: 1565700000,
			})
			assert.Nil(t, err)
			if tc.appointed {
				_, err := officers.Put(db, OfficerKey(charterID, officer.Address()), &Officer{
					Metadata:    &guild.Metadata{Schema: 1},
					Charter:     charterID,
					Address:     officer.Address(),
					Permissions: []Permission{Permission_CUSTODY_TRANSFER},
				})
				assert.Nil(t, err)
			}

			auth := &guildtest.Auth{Signers: tc.signers}
			h := SetOfficerHandler{auth: auth, officers: officers, gate: NewGatekeeper()}
			tx := &guildtest.Tx{Msg: tc.msg}

			_, err = h.Deliver(nil, db, tx)
			if tc.wantDeliverErr != nil {
				assert.IsErr(t, tc.wantDeliverErr, err)
				return
			}
			assert.Nil(t, err)

			var o Officer
			err = officers.One(db, OfficerKey(charterID, officer.Address()), &o)
			if len(tc.wantPerms) == 0 {
				assert.IsErr(t, errors.ErrNotFound, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantPerms, o.Permissions)
		})
	}
}
