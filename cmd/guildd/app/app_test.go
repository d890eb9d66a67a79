package app

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild"
	guildapp "github.com/guild-net/guild/app"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/crypto"
	"github.com/guild-net/guild/guildtest/assert"
	"github.com/guild-net/guild/x/charter"
	"github.com/guild-net/guild/x/collectibles"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
	"github.com/guild-net/guild/x/vault"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const testChainID = "guild-test-9"

// testKit runs the assembled application in memory, with a genesis
// declaring one charter, its vault and two funded accounts.
type testKit struct {
	app       guildapp.BaseApp
	admin     *crypto.PrivateKey
	member    *crypto.PrivateKey
	kyc       *btcec.PrivateKey
	charterID []byte
	height    int64
	seqs      map[string]int64
}

func newTestKit(t *testing.T) *testKit {
	t.Helper()

	abciApp, err := GenerateApp("", log.NewNopLogger(), false)
	assert.Nil(t, err)
	myApp, ok := abciApp.(guildapp.BaseApp)
	if !ok {
		t.Fatalf("unexpected application type %T", abciApp)
	}

	admin := crypto.GenPrivKeyEd25519()
	member := crypto.GenPrivKeyEd25519()
	kyc, err := btcec.NewPrivateKey(btcec.S256())
	assert.Nil(t, err)

	adminAddr := admin.PublicKey().Address()
	memberAddr := member.PublicKey().Address()
	kycAddr := onboard.SignerCondition(kyc.PubKey().SerializeCompressed()).Address()

	appState := fmt.Sprintf(`{
		"treasury": [
			{"address": "%s", "coins": [{"whole": 50000, "ticker": "GLD"}, {"whole": 1000, "ticker": "WGLD"}]},
			{"address": "%s", "coins": [{"whole": 1000, "ticker": "WGLD"}]}
		],
		"charter": [
			{
				"title": "North Harbor Guild",
				"admin": "%s",
				"kyc_signer": "%s",
				"unit_price": {"whole": 100, "ticker": "WGLD"},
				"max_units": 5,
				"top_up": true,
				"created_at": 1565000000
			}
		],
		"vault": [
			{"charter": 1, "admin": "%s"}
		],
		"conf": {
			"migration": {"admin": "%s"},
			"treasury": {
				"metadata": {"schema": 1},
				"collector": "%s",
				"minimal_fee": {}
			},
			"onboard": {
				"metadata": {"schema": 1},
				"native_ticker": "GLD",
				"wrapped_ticker": "WGLD",
				"unit_ticker": "SEAT"
			}
		},
		"initialize_schema": ["sigs", "treasury", "charter", "onboard", "collectibles", "vault"]
	}`, adminAddr, memberAddr, adminAddr, kycAddr, adminAddr, adminAddr, adminAddr)

	assert.Equal(t, "", myApp.GetChainID())
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       testChainID,
	})

	k := &testKit{
		app:       myApp,
		admin:     admin,
		member:    member,
		kyc:       kyc,
		charterID: []byte{0, 0, 0, 0, 0, 0, 0, 1},
		seqs:      make(map[string]int64),
	}
	// Close the genesis block, so queries see the initial state.
	k.commit(t)
	assert.Equal(t, testChainID, myApp.GetChainID())
	return k
}

func (k *testKit) header() abci.Header {
	return abci.Header{
		ChainID: testChainID,
		Height:  k.height,
		Time:    time.Unix(1565800000+k.height, 0),
	}
}

// commit closes an empty block, making delivered state visible to
// queries.
func (k *testKit) commit(t *testing.T) []byte {
	t.Helper()
	k.height++
	k.app.BeginBlock(abci.RequestBeginBlock{Header: k.header()})
	k.app.EndBlock(abci.RequestEndBlock{Height: k.height})
	res := k.app.Commit()
	if len(res.Data) == 0 {
		t.Fatal("commit returned an empty hash")
	}
	return res.Data
}

// sign appends one signature per key, tracking every signer's sequence
// across the whole test. A failed delivery still consumes a sequence.
func (k *testKit) sign(t *testing.T, tx *Tx, signers ...*crypto.PrivateKey) {
	t.Helper()
	for _, priv := range signers {
		addr := priv.PublicKey().Address().String()
		sig, err := sigs.SignTx(priv, tx, testChainID, k.seqs[addr])
		assert.Nil(t, err)
		k.seqs[addr]++
		tx.Signatures = append(tx.Signatures, sig)
	}
}

func (k *testKit) runBlock(t *testing.T, raw []byte) (abci.ResponseCheckTx, abci.ResponseDeliverTx) {
	t.Helper()
	k.height++
	k.app.BeginBlock(abci.RequestBeginBlock{Header: k.header()})
	cres := k.app.CheckTx(raw)
	dres := k.app.DeliverTx(raw)
	k.app.EndBlock(abci.RequestEndBlock{Height: k.height})
	k.app.Commit()
	return cres, dres
}

// deliver signs and lands a transaction that must succeed.
func (k *testKit) deliver(t *testing.T, tx *Tx, signers ...*crypto.PrivateKey) abci.ResponseDeliverTx {
	t.Helper()
	k.sign(t, tx, signers...)
	raw, err := tx.Marshal()
	assert.Nil(t, err)
	cres, dres := k.runBlock(t, raw)
	if cres.Code != 0 {
		t.Fatalf("check failed: %s", cres.Log)
	}
	if dres.Code != 0 {
		t.Fatalf("deliver failed: %s", dres.Log)
	}
	return dres
}

// deliverErr signs and lands a transaction without judging the
// outcome. The caller inspects the response codes.
func (k *testKit) deliverErr(t *testing.T, tx *Tx, signers ...*crypto.PrivateKey) (abci.ResponseCheckTx, abci.ResponseDeliverTx) {
	t.Helper()
	k.sign(t, tx, signers...)
	raw, err := tx.Marshal()
	assert.Nil(t, err)
	return k.runBlock(t, raw)
}

// query does an exact lookup on a registered query path. It reports
// whether the key exists, loading the value into dst when it does.
func (k *testKit) query(t *testing.T, path string, key []byte, dst guild.Persistent) bool {
	t.Helper()
	res := k.app.Query(abci.RequestQuery{Path: path, Data: key})
	if res.Code != 0 {
		t.Fatalf("query %q: %s", path, res.Log)
	}
	var set guildapp.ResultSet
	assert.Nil(t, set.Unmarshal(res.Value))
	if len(set.Results) == 0 {
		return false
	}
	assert.Nil(t, dst.Unmarshal(set.Results[0]))
	return true
}

// whole returns the whole part of a ticker balance, zero when the
// wallet or the ticker is absent.
func (k *testKit) whole(t *testing.T, addr guild.Address, ticker string) int64 {
	t.Helper()
	var w treasury.Wallet
	if !k.query(t, "/wallets", addr, &w) {
		return 0
	}
	for _, c := range w.Coins {
		if c.Ticker == ticker {
			return c.Whole
		}
	}
	return 0
}

// coupon signs a redemption hash with the genesis KYC key.
func (k *testKit) coupon(t *testing.T, member guild.Address, nonce int64) []byte {
	t.Helper()
	hash := onboard.CouponHash(k.charterID, onboard.VerifierCondition().Address(), testChainID, member, nonce)
	sig, err := btcec.SignCompact(btcec.S256(), k.kyc, hash, true)
	assert.Nil(t, err)
	return sig
}

func toHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

func TestAppOnboardFlow(t *testing.T) {
	k := newTestKit(t)
	adminAddr := k.admin.PublicKey().Address()
	memberAddr := k.member.PublicKey().Address()
	treasuryAddr := charter.TreasuryCondition(k.charterID).Address()

	// Genesis state must be visible.
	var c charter.Charter
	assert.Equal(t, true, k.query(t, "/charters", k.charterID, &c))
	assert.Equal(t, "North Harbor Guild", c.Title)
	assert.Equal(t, int64(100), c.UnitPrice.Whole)

	var v vault.Vault
	assert.Equal(t, true, k.query(t, "/vaults", k.charterID, &v))
	assert.Equal(t, 0, len(v.Collections))

	assert.Equal(t, int64(50000), k.whole(t, adminAddr, "GLD"))
	assert.Equal(t, int64(1000), k.whole(t, memberAddr, "WGLD"))

	// Redeem the first coupon. 250 WGLD buys two units, the 50 WGLD
	// remainder comes back and the one coin fee goes to the
	// collector.
	first := &onboard.OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: k.charterID,
		Member:    memberAddr,
		Amount:    coin.NewCoin(250, 0, "WGLD"),
		Nonce:     1,
		Signature: k.coupon(t, memberAddr, 1),
	}
	tx := &Tx{Sum: &Tx_OnboardTokenMsg{first}}
	tx.Fee(memberAddr, coin.NewCoin(1, 0, "WGLD"))
	dres := k.deliver(t, tx, k.member)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 2}, dres.Data)

	assert.Equal(t, int64(799), k.whole(t, memberAddr, "WGLD"))
	assert.Equal(t, int64(2), k.whole(t, memberAddr, "SEAT"))
	assert.Equal(t, int64(200), k.whole(t, treasuryAddr, "WGLD"))
	// The collector is the admin account.
	assert.Equal(t, int64(1001), k.whole(t, adminAddr, "WGLD"))

	// The roster and the nonce moved along. The member activation
	// carries the block time.
	var m charter.Member
	assert.Equal(t, true, k.query(t, "/members", charter.MemberKey(k.charterID, memberAddr), &m))
	assert.Equal(t, true, m.Active)
	assert.Equal(t, guild.UnixTime(1565800002), m.Since)
	var mn onboard.MemberNonce
	assert.Equal(t, true, k.query(t, "/nonces", memberAddr, &mn))
	assert.Equal(t, int64(1), mn.Nonce)

	// Every account touched by the delivery is tagged.
	wantTagged := []string{
		toHex("treasury:") + memberAddr.String(),
		toHex("treasury:") + treasuryAddr.String(),
		toHex("sigs:") + memberAddr.String(),
		toHex("nonce:") + memberAddr.String(),
	}
	for _, want := range wantTagged {
		var found bool
		for _, tag := range dres.Tags {
			if string(tag.Key) == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing tag %q", want)
		}
	}

	// Top up to the unit cap.
	second := &onboard.OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: k.charterID,
		Member:    memberAddr,
		Amount:    coin.NewCoin(310, 0, "WGLD"),
		Nonce:     2,
		Signature: k.coupon(t, memberAddr, 2),
	}
	dres = k.deliver(t, &Tx{Sum: &Tx_OnboardTokenMsg{second}}, k.member)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 3}, dres.Data)
	assert.Equal(t, int64(499), k.whole(t, memberAddr, "WGLD"))
	assert.Equal(t, int64(5), k.whole(t, memberAddr, "SEAT"))
	assert.Equal(t, int64(500), k.whole(t, treasuryAddr, "WGLD"))

	// The cap is reached. One more unit must be refused and the
	// failed delivery must leave the funds untouched.
	third := &onboard.OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: k.charterID,
		Member:    memberAddr,
		Amount:    coin.NewCoin(100, 0, "WGLD"),
		Nonce:     3,
		Signature: k.coupon(t, memberAddr, 3),
	}
	_, dres3 := k.deliverErr(t, &Tx{Sum: &Tx_OnboardTokenMsg{third}}, k.member)
	assert.Equal(t, onboard.ErrUnitLimit.ABCICode(), dres3.Code)
	assert.Equal(t, int64(499), k.whole(t, memberAddr, "WGLD"))
	assert.Equal(t, int64(5), k.whole(t, memberAddr, "SEAT"))

	// A fresh transaction cannot present an already redeemed nonce.
	replay := &onboard.OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: k.charterID,
		Member:    memberAddr,
		Amount:    coin.NewCoin(100, 0, "WGLD"),
		Nonce:     2,
		Signature: k.coupon(t, memberAddr, 2),
	}
	_, dres4 := k.deliverErr(t, &Tx{Sum: &Tx_OnboardTokenMsg{replay}}, k.member)
	assert.Equal(t, onboard.ErrNonceReplay.ABCICode(), dres4.Code)
}

func TestAppCustodyFlow(t *testing.T) {
	k := newTestKit(t)
	adminAddr := k.admin.PublicKey().Address()
	memberAddr := k.member.PublicKey().Address()
	tokenID := []byte("relic-0001")

	// The admin opens a collection and mints a token for the member.
	issue := &collectibles.IssueCollectionMsg{
		Metadata: &guild.Metadata{Schema: 1},
		Symbol:   "RELIC",
		Issuer:   adminAddr,
	}
	dres := k.deliver(t, &Tx{Sum: &Tx_IssueCollectionMsg{issue}}, k.admin)
	collectionID := dres.Data
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, collectionID)

	mint := &collectibles.MintTokenMsg{
		Metadata:     &guild.Metadata{Schema: 1},
		CollectionId: collectionID,
		TokenId:      tokenID,
		Owner:        memberAddr,
	}
	k.deliver(t, &Tx{Sum: &Tx_MintTokenMsg{mint}}, k.admin)

	var tok collectibles.Token
	assert.Equal(t, true, k.query(t, "/tokens", collectibles.TokenKey(collectionID, tokenID), &tok))
	assert.Equal(t, memberAddr, tok.Owner)

	// The member hands the token into custody.
	deposit := &vault.DepositMsg{
		Metadata:     &guild.Metadata{Schema: 1},
		CharterId:    k.charterID,
		CollectionId: collectionID,
		TokenId:      tokenID,
	}
	k.deliver(t, &Tx{Sum: &Tx_DepositMsg{deposit}}, k.member)

	custody := vault.CustodyCondition(k.charterID).Address()
	assert.Equal(t, true, k.query(t, "/tokens", collectibles.TokenKey(collectionID, tokenID), &tok))
	assert.Equal(t, custody, tok.Owner)

	var v vault.Vault
	assert.Equal(t, true, k.query(t, "/vaults", k.charterID, &v))
	assert.Equal(t, 1, len(v.Collections))

	holdingKey := vault.HoldingKey(k.charterID, collectionID, tokenID)
	var h vault.Holding
	assert.Equal(t, true, k.query(t, "/vaults/holdings", holdingKey, &h))
	assert.Equal(t, vault.GuildOwnerCondition(k.charterID).Address(), h.Owner)

	// Plain value transfers into the custody account are refused
	// already at check time.
	amt := coin.NewCoin(10, 0, "WGLD")
	send := &treasury.SendMsg{
		Metadata:    &guild.Metadata{Schema: 1},
		Source:      adminAddr,
		Destination: custody,
		Amount:      &amt,
		Memo:        "donation",
	}
	cres, sres := k.deliverErr(t, &Tx{Sum: &Tx_SendMsg{send}}, k.admin)
	assert.Equal(t, vault.ErrDirectValue.ABCICode(), cres.Code)
	assert.Equal(t, vault.ErrDirectValue.ABCICode(), sres.Code)
	assert.Equal(t, int64(0), k.whole(t, custody, "WGLD"))

	// The charter admin reassigns the holding on the books.
	assign := &vault.InternalTransferMsg{
		Metadata:     &guild.Metadata{Schema: 1},
		CharterId:    k.charterID,
		CollectionId: collectionID,
		TokenId:      tokenID,
		NewOwner:     memberAddr,
	}
	k.deliver(t, &Tx{Sum: &Tx_InternalTransferMsg{assign}}, k.admin)
	assert.Equal(t, true, k.query(t, "/vaults/holdings", holdingKey, &h))
	assert.Equal(t, memberAddr, h.Owner)

	// Withdrawing an assigned holding takes the holder's consent
	// next to the withdraw permission, so the member co-signs.
	withdraw := &vault.WithdrawMsg{
		Metadata:     &guild.Metadata{Schema: 1},
		CharterId:    k.charterID,
		CollectionId: collectionID,
		TokenId:      tokenID,
		Destination:  memberAddr,
	}
	k.deliver(t, &Tx{Sum: &Tx_WithdrawMsg{withdraw}}, k.admin, k.member)

	assert.Equal(t, true, k.query(t, "/tokens", collectibles.TokenKey(collectionID, tokenID), &tok))
	assert.Equal(t, memberAddr, tok.Owner)
	assert.Equal(t, false, k.query(t, "/vaults/holdings", holdingKey, &h))
	assert.Equal(t, true, k.query(t, "/vaults", k.charterID, &v))
	assert.Equal(t, 0, len(v.Collections))
}

func TestAppBatch(t *testing.T) {
	k := newTestKit(t)
	adminAddr := k.admin.PublicKey().Address()
	memberAddr := k.member.PublicKey().Address()

	// Two payments land atomically in a single transaction.
	pay := func(whole int64) ExecuteBatchMsg_Union {
		amt := coin.NewCoin(whole, 0, "GLD")
		return ExecuteBatchMsg_Union{
			Sum: &ExecuteBatchMsg_Union_SendMsg{
				SendMsg: &treasury.SendMsg{
					Metadata:    &guild.Metadata{Schema: 1},
					Source:      adminAddr,
					Destination: memberAddr,
					Amount:      &amt,
					Memo:        "batch payment",
				},
			},
		}
	}
	batchMsg := &ExecuteBatchMsg{
		Messages: []ExecuteBatchMsg_Union{pay(30), pay(70)},
	}
	k.deliver(t, &Tx{Sum: &Tx_ExecuteBatchMsg{batchMsg}}, k.admin)

	assert.Equal(t, int64(100), k.whole(t, memberAddr, "GLD"))
	assert.Equal(t, int64(49900), k.whole(t, adminAddr, "GLD"))
}
