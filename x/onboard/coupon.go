package onboard

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

const (
	// couponTag separates coupon hashes from any other signed
	// payload.
	couponTag = "coupon-kyc"

	// couponSigLength is the size of a compact secp256k1 signature:
	// one recovery byte followed by R and S, 32 byte each.
	couponSigLength = 65
)

// VerifierCondition is the identity of this onboarding deployment. Its
// address is part of every coupon hash, so a coupon issued for one
// deployment cannot be presented to another.
func VerifierCondition() guild.Condition {
	return guild.NewCondition("onboard", "coupon", []byte("verifier"))
}

// WrapCondition is the reserve account that locks native value backing
// the wrapped ticker issued for one charter.
func WrapCondition(charterID []byte) guild.Condition {
	return guild.NewCondition("onboard", "wrap", charterID)
}

// SignerCondition wraps a compressed secp256k1 public key. The KYC
// signer registered on a charter is the address of this condition.
func SignerCondition(pubkey []byte) guild.Condition {
	return guild.NewCondition("onboard", "secp256k1", pubkey)
}

// CouponHash is the canonical digest that a KYC signer signs. Every
// field is length prefixed, so no two field combinations collide. The
// verifier address and the chain ID bind a coupon to one deployment,
// the member to one recipient and the nonce to one redemption.
//
// Off chain issuers must reproduce this construction bit for bit.
func CouponHash(charterID []byte, verifier guild.Address, chainID string, member guild.Address, nonce int64) []byte {
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, uint64(nonce))

	var output []byte
	for _, field := range [][]byte{
		[]byte(couponTag),
		charterID,
		verifier,
		[]byte(chainID),
		member,
		n,
	} {
		plen := make([]byte, 4)
		binary.BigEndian.PutUint32(plen, uint32(len(field)))
		output = append(output, plen...)
		output = append(output, field...)
	}

	hashed := sha256.Sum256(output)
	return hashed[:]
}

// RecoverSigner returns the address of the identity that produced the
// compact signature over the given hash. Any malformed signature fails
// with ErrInvalidCoupon, never with a panic.
func RecoverSigner(hash []byte, sig []byte) (guild.Address, error) {
	if len(sig) != couponSigLength {
		return nil, errors.Wrapf(ErrInvalidCoupon, "signature must be %d bytes", couponSigLength)
	}
	// The first byte encodes the recovery information. btcec accepts
	// 27..34, anything else underflows inside the library.
	if sig[0] < 27 || sig[0] > 34 {
		return nil, errors.Wrap(ErrInvalidCoupon, "invalid recovery byte")
	}
	pub, _, err := btcec.RecoverCompact(btcec.S256(), sig, hash)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCoupon, "cannot recover public key: %v", err)
	}
	return SignerCondition(pub.SerializeCompressed()).Address(), nil
}
