package gconf

import (
	"encoding/json"
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/store"
	"github.com/guild-net/guild/guildtest/assert"
)

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	c := testconf{
		Text:   "foobar",
		Number: 851,
	}
	if err := Save(db, "testpkg", &c); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	var loaded testconf
	if err := Load(db, "testpkg", &loaded); err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	assert.Equal(t, c, loaded)

	if err := Load(db, "unknownpkg", &loaded); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected load error for an unknown package: %s", err)
	}
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()

	c := testconf{
		Text:   "invalid",
		Number: 2,
	}
	if err := Save(db, "testpkg", &c); !errors.ErrState.Is(err) {
		t.Fatalf("an invalid configuration must not be saved: %s", err)
	}
}

func TestInitConfig(t *testing.T) {
	const genesis = `
	{
		"conf": {
			"testpkg": {
				"text": "with great power comes great responsibility",
				"number": 421
			}
		}
	}
	`
	var opts guild.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var c testconf
	if err := InitConfig(db, opts, "testpkg", &c); err != nil {
		t.Fatalf("cannot initialize configuration: %s", err)
	}

	var loaded testconf
	if err := Load(db, "testpkg", &loaded); err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	assert.Equal(t, "with great power comes great responsibility", loaded.Text)
	assert.Equal(t, int64(421), loaded.Number)
}

func TestInitConfigMissingPackage(t *testing.T) {
	const genesis = `{"conf": {"otherpkg": {"number": 1}}}`
	var opts guild.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var c testconf
	if err := InitConfig(db, opts, "testpkg", &c); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected initialization error: %s", err)
	}
}

type testconf struct {
	Text   string `json:"text"`
	Number int64  `json:"number"`
}

func (c *testconf) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *testconf) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &c) }

func (c *testconf) Validate() error {
	if c.Text == "invalid" {
		return errors.Wrap(errors.ErrState, "invalid text")
	}
	return nil
}
