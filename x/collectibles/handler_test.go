package collectibles

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectiblesLifecycle(t *testing.T) {
	Convey("Given a fresh collectibles ledger", t, func() {
		db := store.MemStore()
		migration.MustInitPkg(db, "collectibles")

		issuer := guildtest.NewCondition()
		owner := guildtest.NewCondition()
		stranger := guildtest.NewCondition()

		collections := NewCollectionBucket()
		tokens := NewTokenBucket()

		issue := IssueCollectionHandler{auth: &guildtest.Auth{Signer: issuer}, collections: collections}
		mint := MintTokenHandler{auth: &guildtest.Auth{Signer: issuer}, collections: collections, tokens: tokens}

		issueTx := &guildtest.Tx{Msg: &IssueCollectionMsg{
			Metadata: &guild.Metadata{Schema: 1},
			Symbol:   "RELIC",
			Issuer:   issuer.Address(),
		}}

		Convey("issuing a collection assigns the first sequence value", func() {
			_, err := issue.Check(nil, db, issueTx)
			So(err, ShouldBeNil)
			res, err := issue.Deliver(nil, db, issueTx)
			So(err, ShouldBeNil)
			So(res.Data, ShouldResemble, guildtest.SequenceID(1))

			var c Collection
			So(collections.One(db, res.Data, &c), ShouldBeNil)
			So(c.Symbol, ShouldEqual, "RELIC")
			So(c.Issuer, ShouldResemble, issuer.Address())

			Convey("the issuer mints a token", func() {
				mintTx := &guildtest.Tx{Msg: &MintTokenMsg{
					Metadata:     &guild.Metadata{Schema: 1},
					CollectionId: res.Data,
					TokenId:      []byte("relic-7"),
					Owner:        owner.Address(),
				}}
				mres, err := mint.Deliver(nil, db, mintTx)
				So(err, ShouldBeNil)
				So(mres.Data, ShouldResemble, TokenKey(res.Data, []byte("relic-7")))

				var tok Token
				So(tokens.One(db, mres.Data, &tok), ShouldBeNil)
				So(tok.Owner, ShouldResemble, owner.Address())

				Convey("minting the same token again fails", func() {
					_, err := mint.Deliver(nil, db, mintTx)
					So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
				})

				Convey("the owner transfers it", func() {
					transfer := TransferTokenHandler{auth: &guildtest.Auth{Signer: owner}, tokens: tokens}
					tx := &guildtest.Tx{Msg: &TransferTokenMsg{
						Metadata:     &guild.Metadata{Schema: 1},
						CollectionId: res.Data,
						TokenId:      []byte("relic-7"),
						Destination:  stranger.Address(),
					}}
					_, err := transfer.Deliver(nil, db, tx)
					So(err, ShouldBeNil)

					So(tokens.One(db, mres.Data, &tok), ShouldBeNil)
					So(tok.Owner, ShouldResemble, stranger.Address())

					// The owner index follows the transfer.
					var held []*Token
					keys, err := tokens.ByIndex(db, "owner", stranger.Address(), &held)
					So(err, ShouldBeNil)
					So(len(keys), ShouldEqual, 1)
					keys, err = tokens.ByIndex(db, "owner", owner.Address(), &held)
					So(err, ShouldBeNil)
					So(len(keys), ShouldEqual, 0)
				})

				Convey("a stranger cannot transfer it", func() {
					transfer := TransferTokenHandler{auth: &guildtest.Auth{Signer: stranger}, tokens: tokens}
					tx := &guildtest.Tx{Msg: &TransferTokenMsg{
						Metadata:     &guild.Metadata{Schema: 1},
						CollectionId: res.Data,
						TokenId:      []byte("relic-7"),
						Destination:  stranger.Address(),
					}}
					_, err := transfer.Deliver(nil, db, tx)
					So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
				})

				Convey("the controller reads and moves custody without a signature", func() {
					ctrl := NewController()

					got, err := ctrl.OwnerOf(db, res.Data, []byte("relic-7"))
					So(err, ShouldBeNil)
					So(got, ShouldResemble, owner.Address())

					So(ctrl.Move(db, res.Data, []byte("relic-7"), stranger.Address()), ShouldBeNil)
					got, err = ctrl.OwnerOf(db, res.Data, []byte("relic-7"))
					So(err, ShouldBeNil)
					So(got, ShouldResemble, stranger.Address())

					_, err = ctrl.OwnerOf(db, res.Data, []byte("no-such"))
					So(errors.ErrNotFound.Is(err), ShouldBeTrue)
				})
			})

			Convey("a stranger cannot mint", func() {
				h := MintTokenHandler{auth: &guildtest.Auth{Signer: stranger}, collections: collections, tokens: tokens}
				tx := &guildtest.Tx{Msg: &MintTokenMsg{
					Metadata:     &guild.Metadata{Schema: 1},
					CollectionId: res.Data,
					TokenId:      []byte("relic-7"),
					Owner:        stranger.Address(),
				}}
				_, err := h.Deliver(nil, db, tx)
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			})

			Convey("minting into an unknown collection fails", func() {
				tx := &guildtest.Tx{Msg: &MintTokenMsg{
					Metadata:     &guild.Metadata{Schema: 1},
					CollectionId: guildtest.SequenceID(9),
					TokenId:      []byte("relic-7"),
					Owner:        owner.Address(),
				}}
				_, err := mint.Deliver(nil, db, tx)
				So(errors.ErrNotFound.Is(err), ShouldBeTrue)
			})
		})

		Convey("issuing requires the issuer signature", func() {
			h := IssueCollectionHandler{auth: &guildtest.Auth{Signer: stranger}, collections: collections}
			_, err := h.Deliver(nil, db, issueTx)
			So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
		})
	})
}
