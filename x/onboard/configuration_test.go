package onboard

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf     Configuration
		wantErrs map[string]*errors.Error
	}{
		"valid": {
			conf: Configuration{
				Metadata:      &guild.Metadata{Schema: 1},
				NativeTicker:  "GLD",
				WrappedTicker: "WGLD",
				UnitTicker:    "SEAT",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":      nil,
				"Owner":         nil,
				"NativeTicker":  nil,
				"WrappedTicker": nil,
				"UnitTicker":    nil,
			},
		},
		"valid with an owner": {
			conf: Configuration{
				Metadata:      &guild.Metadata{Schema: 1},
				Owner:         guildtest.NewCondition().Address(),
				NativeTicker:  "GLD",
				WrappedTicker: "WGLD",
				UnitTicker:    "SEAT",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":      nil,
				"Owner":         nil,
				"NativeTicker":  nil,
				"WrappedTicker": nil,
				"UnitTicker":    nil,
			},
		},
		"missing metadata": {
			conf: Configuration{
				NativeTicker:  "GLD",
				WrappedTicker: "WGLD",
				UnitTicker:    "SEAT",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":      errors.ErrMetadata,
				"Owner":         nil,
				"NativeTicker":  nil,
				"WrappedTicker": nil,
				"UnitTicker":    nil,
			},
		},
		"broken ticker": {
			conf: Configuration{
				Metadata:      &guild.Metadata{Schema: 1},
				NativeTicker:  "gold",
				WrappedTicker: "WGLD",
				UnitTicker:    "SEAT",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":      nil,
				"Owner":         nil,
				"NativeTicker":  errors.ErrCurrency,
				"WrappedTicker": nil,
				"UnitTicker":    nil,
			},
		},
		"wrapped ticker equals the native one": {
			conf: Configuration{
				Metadata:      &guild.Metadata{Schema: 1},
				NativeTicker:  "GLD",
				WrappedTicker: "GLD",
				UnitTicker:    "SEAT",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":      nil,
				"Owner":         nil,
				"NativeTicker":  nil,
				"WrappedTicker": errors.ErrCurrency,
				"UnitTicker":    nil,
			},
		},
		"unit ticker equals a contribution one": {
			conf: Configuration{
				Metadata:      &guild.Metadata{Schema: 1},
				NativeTicker:  "GLD",
				WrappedTicker: "WGLD",
				UnitTicker:    "WGLD",
			},
			wantErrs: map[string]*errors.Error{
				"Metadata":      nil,
				"Owner":         nil,
				"NativeTicker":  nil,
				"WrappedTicker": nil,
				"UnitTicker":    errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
