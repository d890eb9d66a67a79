package app

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/crypto"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
	"github.com/tendermint/tendermint/libs/log"
)

const benchChainID = "guild-bench-1"

// benchBlockSize is how many transactions the benchmarks pack into a
// single block before committing.
const benchBlockSize = 100

func BenchmarkEmptyBlock(b *testing.B) {
	runner, _, _ := newBenchApp(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		changed := runner.InBlock(func(guildtest.App) error {
			return nil
		})
		if changed {
			b.Fatal("state must not change on an empty block")
		}
	}
}

func BenchmarkSendTx(b *testing.B) {
	runner, admin, _ := newBenchApp(b)
	adminAddr := admin.PublicKey().Address()
	rcpt := crypto.GenPrivKeyEd25519().PublicKey().Address()

	b.ResetTimer()
	var seq int64
	for done := 0; done < b.N; {
		batch := b.N - done
		if batch > benchBlockSize {
			batch = benchBlockSize
		}
		runner.InBlock(func(r guildtest.App) error {
			for i := 0; i < batch; i++ {
				amt := coin.NewCoin(1, 0, "GLD")
				tx := &Tx{
					Sum: &Tx_SendMsg{SendMsg: &treasury.SendMsg{
						Metadata:    &guild.Metadata{Schema: 1},
						Source:      adminAddr,
						Destination: rcpt,
						Amount:      &amt,
						Memo:        "benchmark",
					}},
				}
				sig, err := sigs.SignTx(admin, tx, benchChainID, seq)
				if err != nil {
					return err
				}
				seq++
				tx.Signatures = []*sigs.StdSignature{sig}
				if err := r.DeliverTx(tx); err != nil {
					return err
				}
			}
			return nil
		})
		done += batch
	}
}

func BenchmarkOnboardTx(b *testing.B) {
	runner, admin, kyc := newBenchApp(b)
	adminAddr := admin.PublicKey().Address()
	charterID := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	verifier := onboard.VerifierCondition().Address()

	b.ResetTimer()
	var seq int64
	for done := 0; done < b.N; {
		batch := b.N - done
		if batch > benchBlockSize {
			batch = benchBlockSize
		}

		members := make([]*crypto.PrivateKey, batch)
		for i := range members {
			members[i] = crypto.GenPrivKeyEd25519()
		}

		// One block to stake every member, the next one to redeem
		// their coupons.
		runner.InBlock(func(r guildtest.App) error {
			for _, m := range members {
				amt := coin.NewCoin(100, 0, "WGLD")
				tx := &Tx{
					Sum: &Tx_SendMsg{SendMsg: &treasury.SendMsg{
						Metadata:    &guild.Metadata{Schema: 1},
						Source:      adminAddr,
						Destination: m.PublicKey().Address(),
						Amount:      &amt,
						Memo:        "stake",
					}},
				}
				sig, err := sigs.SignTx(admin, tx, benchChainID, seq)
				if err != nil {
					return err
				}
				seq++
				tx.Signatures = []*sigs.StdSignature{sig}
				if err := r.DeliverTx(tx); err != nil {
					return err
				}
			}
			return nil
		})

		runner.InBlock(func(r guildtest.App) error {
			for _, m := range members {
				addr := m.PublicKey().Address()
				hash := onboard.CouponHash(charterID, verifier, benchChainID, addr, 1)
				coupon, err := btcec.SignCompact(btcec.S256(), kyc, hash, true)
				if err != nil {
					return err
				}
				tx := &Tx{
					Sum: &Tx_OnboardTokenMsg{OnboardTokenMsg: &onboard.OnboardTokenMsg{
						Metadata:  &guild.Metadata{Schema: 1},
						CharterId: charterID,
						Member:    addr,
						Amount:    coin.NewCoin(100, 0, "WGLD"),
						Nonce:     1,
						Signature: coupon,
					}},
				}
				sig, err := sigs.SignTx(m, tx, benchChainID, 0)
				if err != nil {
					return err
				}
				tx.Signatures = []*sigs.StdSignature{sig}
				if err := r.DeliverTx(tx); err != nil {
					return err
				}
			}
			return nil
		})
		done += batch
	}
}

// newBenchApp runs the assembled application against an on disk store,
// with a single funded account and one charter in the genesis.
func newBenchApp(b *testing.B) (*guildtest.AppRunner, *crypto.PrivateKey, *btcec.PrivateKey) {
	b.Helper()

	homeDir, err := ioutil.TempDir("", "guildd_performance_home")
	if err != nil {
		b.Fatalf("cannot create a temporary directory: %s", err)
	}
	b.Logf("using home directory: %q", homeDir)
	abciApp, err := GenerateApp(homeDir, log.NewNopLogger(), false)
	if err != nil {
		b.Fatalf("cannot generate guildd instance: %s", err)
	}

	admin := crypto.GenPrivKeyEd25519()
	kyc, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		b.Fatalf("cannot generate kyc key: %s", err)
	}
	adminAddr := admin.PublicKey().Address()
	kycAddr := onboard.SignerCondition(kyc.PubKey().SerializeCompressed()).Address()

	appState := fmt.Sprintf(`{
		"treasury": [
			{"address": "%s", "coins": [{"whole": 50000000, "ticker": "GLD"}, {"whole": 50000000, "ticker": "WGLD"}]}
		],
		"charter": [
			{
				"title": "Benchmark Guild",
				"admin": "%s",
				"kyc_signer": "%s",
				"unit_price": {"whole": 100, "ticker": "WGLD"},
				"max_units": 5,
				"top_up": true,
				"created_at": 1565000000
			}
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
	}`, adminAddr, adminAddr, kycAddr, adminAddr, adminAddr)

	runner := guildtest.NewAppRunner(b, abciApp, benchChainID)
	runner.InitChain(json.RawMessage(appState))
	return runner, admin, kyc
}
