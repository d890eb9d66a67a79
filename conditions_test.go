package guild_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/crypto/bech32"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestConditionPrinting(t *testing.T) {
	var nilAddr guild.Address
	assert.Equal(t, "(nil)", nilAddr.String())

	cond := guild.NewCondition("sigs", "ed25519", []byte{0xaa, 0xbb})
	assert.Equal(t, "sigs/ed25519/AABB", cond.String())

	broken := guild.Condition("foobar")
	assert.Equal(t, "Invalid Condition: 666F6F626172", broken.String())
}

func TestConditionParse(t *testing.T) {
	// Data part can contain any bytes, including separators and newlines.
	payload := []byte("first/line\nsecond line")
	cond := guild.NewCondition("onboard", "coupon", payload)

	ext, typ, data, err := cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, "onboard", ext)
	assert.Equal(t, "coupon", typ)
	assert.Equal(t, payload, data)

	if _, _, _, err := guild.Condition("xy/coupon/data").Parse(); !errors.ErrInput.Is(err) {
		t.Fatalf("a two character extension must not parse: %+v", err)
	}
	if err := guild.Condition("xy/coupon/data").Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("a two character extension must not validate: %+v", err)
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr guild.Address
	}{
		"default decoding": {
			json:     `"616464726573732d696e2d32302d627974657321"`,
			wantAddr: guild.Address("address-in-20-bytes!"),
		},
		"hex decoding": {
			json:     `"hex:616464726573732d696e2d32302d627974657321"`,
			wantAddr: guild.Address("address-in-20-bytes!"),
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: guild.NewCondition("foo", "bar", []byte("conditiondata")).Address(),
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"hex of a wrong length": {
			json:    `"hex:616263"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a guild.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestAddressUnmarshalBech32(t *testing.T) {
	addr := guild.Address("address-in-20-bytes!")
	enc, err := bech32.Encode("guild", addr)
	assert.Nil(t, err)

	raw, err := json.Marshal("bech32:" + string(enc))
	assert.Nil(t, err)

	var got guild.Address
	assert.Nil(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition guild.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: guild.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"zero address": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got guild.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cases := map[string]struct {
		source   guild.Condition
		wantJson string
	}{
		"cond encoding": {
			source:   guild.NewCondition("foo", "bar", []byte("conditiondata")),
			wantJson: `"foo/bar/636F6E646974696F6E64617461"`,
		},
		"nil encoding": {
			source:   nil,
			wantJson: `""`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := json.Marshal(tc.source)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantJson, string(got))
		})
	}
}
