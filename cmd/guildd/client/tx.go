package client

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/cmd/guildd/app"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
)

// Tx is all the interfaces we need rolled into one
type Tx interface {
	guild.Tx
	sigs.SignedTx
	AppendSignature(sig *sigs.StdSignature)
}

type guildTx struct {
	*app.Tx
}

var _ Tx = guildTx{}

func (g guildTx) AppendSignature(sig *sigs.StdSignature) {
	g.Tx.Signatures = append(g.Tx.Signatures, sig)
}

// BuildSendTx will create an unsigned tx to move tokens
func BuildSendTx(source, destination guild.Address, amount coin.Coin, memo string) guildTx {
	return guildTx{&app.Tx{
		Sum: &app.Tx_SendMsg{SendMsg: &treasury.SendMsg{
			Metadata:    &guild.Metadata{Schema: 1},
			Source:      source,
			Destination: destination,
			Amount:      &amount,
			Memo:        memo,
		}},
	}}
}

// BuildOnboardTx will create an unsigned tx that redeems an
// onboarding coupon. The coupon signature comes from the charter's
// kyc signer, see IssueCoupon.
func BuildOnboardTx(charterID []byte, member guild.Address, amount coin.Coin, nonce int64, coupon []byte) guildTx {
	return guildTx{&app.Tx{
		Sum: &app.Tx_OnboardTokenMsg{OnboardTokenMsg: &onboard.OnboardTokenMsg{
			Metadata:  &guild.Metadata{Schema: 1},
			CharterId: charterID,
			Member:    member,
			Amount:    amount,
			Nonce:     nonce,
			Signature: coupon,
		}},
	}}
}

// IssueCoupon signs an onboarding coupon for the given member and
// nonce. This runs off chain, on whatever machine holds the kyc
// signer key registered with the charter.
func IssueCoupon(kyc *btcec.PrivateKey, charterID []byte, chainID string, member guild.Address, nonce int64) ([]byte, error) {
	hash := onboard.CouponHash(charterID, onboard.VerifierCondition().Address(), chainID, member, nonce)
	return btcec.SignCompact(btcec.S256(), kyc, hash, true)
}

// SignTx modifies the tx in-place, adding signatures
func SignTx(tx Tx, signer *PrivateKey, chainID string, nonce int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, nonce)
	if err != nil {
		return err
	}
	tx.AppendSignature(sig)
	return nil
}

// ParseTx will load a serialized tx into a format we can read
func ParseTx(data []byte) (*app.Tx, error) {
	var tx app.Tx
	err := tx.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
