package app

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/commands"
	"github.com/guild-net/guild/crypto"
	"github.com/guild-net/guild/x/charter"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
)

// we fix the private keys here for deterministic output with the same encoding
// these are not secure at all, but the only point is to check the format,
// which is easier when everything is reproduceable.
var (
	source = makePrivKey("1234567890")
	dst    = makePrivKey("F00BA411").PublicKey().Address()
	kyc    = makeCouponKey("00CAFE00F00D")
)

// makePrivKey repeats the string as long as needed to get 64 digits, then
// parses it as hex. It uses this repeated string as a "random" seed
// for the private key.
//
// nothing random about it, but at least it gives us variety
func makePrivKey(seed string) *crypto.PrivateKey {
	rep := 64/len(seed) + 1
	in := strings.Repeat(seed, rep)[:64]
	bin, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	return crypto.PrivKeyEd25519FromSeed(bin)
}

// makeCouponKey derives a secp256k1 key the same way, to play the role
// of a KYC signer issuing coupons off chain.
func makeCouponKey(seed string) *btcec.PrivateKey {
	rep := 64/len(seed) + 1
	in := strings.Repeat(seed, rep)[:64]
	bin, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), bin)
	return priv
}

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &treasury.Wallet{
		Metadata: &guild.Metadata{Schema: 1},
		Coins: []*coin.Coin{
			{Whole: 50000, Ticker: "GLD"},
			{Whole: 150, Fractional: 567000, Ticker: "WGLD"},
		},
	}

	gld := &coin.Coin{Whole: 50000, Fractional: 12345, Ticker: "GLD"}

	pub := source.PublicKey()
	addr := pub.Address()
	user := &sigs.UserData{
		Metadata: &guild.Metadata{Schema: 1},
		Pubkey:   pub,
		Sequence: 17,
	}

	charterID := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	guildCharter := &charter.Charter{
		Metadata:  &guild.Metadata{Schema: 1},
		Title:     "North Harbor Guild",
		Admin:     addr,
		KycSigner: onboard.SignerCondition(kyc.PubKey().SerializeCompressed()).Address(),
		UnitPrice: coin.NewCoin(100, 0, "WGLD"),
		MaxUnits:  10,
		TopUp:     true,
		Treasury:  charter.TreasuryCondition(charterID).Address(),
		CreatedAt: guild.UnixTime(1565700000),
	}

	hash := onboard.CouponHash(charterID, onboard.VerifierCondition().Address(), "test-123", addr, 1)
	coupon, err := btcec.SignCompact(btcec.S256(), kyc, hash, true)
	if err != nil {
		panic(err)
	}
	onboardMsg := &onboard.OnboardTokenMsg{
		Metadata:  &guild.Metadata{Schema: 1},
		CharterId: charterID,
		Member:    addr,
		Amount:    coin.NewCoin(200, 0, "WGLD"),
		Nonce:     1,
		Signature: coupon,
	}
	onboardTx := &Tx{
		Sum: &Tx_OnboardTokenMsg{onboardMsg},
	}

	amt := coin.NewCoin(250, 0, "WGLD")
	msg := &treasury.SendMsg{
		Metadata:    &guild.Metadata{Schema: 1},
		Amount:      &amt,
		Destination: dst,
		Source:      addr,
		Memo:        "Test payment",
	}

	unsigned := Tx{
		Sum: &Tx_SendMsg{msg},
	}
	tx := unsigned
	sig, err := sigs.SignTx(source, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	fmt.Printf("Address: %s\n", addr)
	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "coin", Obj: gld},
		{Filename: "priv_key", Obj: source},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "charter", Obj: guildCharter},
		{Filename: "onboard_token_msg", Obj: onboardMsg},
		{Filename: "onboard_token_tx", Obj: onboardTx},
		{Filename: "send_msg", Obj: msg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
