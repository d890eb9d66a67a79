package client

import (
	"encoding/json"
	"strings"

	"github.com/guild-net/guild/coin"
)

// ToString is a generic stringer which outputs
// a struct in its equivalent (indented) json representation
func ToString(d interface{}) string {
	s, err := json.MarshalIndent(d, "", "	")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

// FindCoinByTicker picks the balance for one ticker out of a wallet
func FindCoinByTicker(coins coin.Coins, ticker string) (*coin.Coin, bool) {
	for _, c := range coins {
		if strings.EqualFold(ticker, c.Ticker) {
			return c, true
		}
	}
	return nil, false
}
