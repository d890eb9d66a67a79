package collectibles

import (
	"regexp"

	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/orm"
)

func init() {
	migration.MustRegister(1, &Collection{}, migration.NoModification)
	migration.MustRegister(1, &Token{}, migration.NoModification)
}

var validSymbol = regexp.MustCompile(`^[A-Z0-9]{3,10}$`).MatchString

var _ orm.Model = (*Collection)(nil)

func (c *Collection) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if !validSymbol(c.Symbol) {
		errs = errors.AppendField(errs, "Symbol", errors.Wrap(errors.ErrInput, "must be 3 to 10 upper case alphanumeric characters"))
	}
	errs = errors.AppendField(errs, "Issuer", c.Issuer.Validate())
	return errs
}

func (c *Collection) Copy() orm.CloneableData {
	return &Collection{
		Metadata: c.Metadata.Copy(),
		Symbol:   c.Symbol,
		Issuer:   c.Issuer,
	}
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	if len(t.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "TokenId", validateTokenID(t.TokenId))
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	return errs
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Metadata:   t.Metadata.Copy(),
		Collection: append([]byte(nil), t.Collection...),
		TokenId:    append([]byte(nil), t.TokenId...),
		Owner:      t.Owner,
	}
}

// validateTokenID bounds identifiers to what external registries use. A
// 32 byte value fits a uint256 identifier.
func validateTokenID(id []byte) error {
	if len(id) == 0 {
		return errors.ErrEmpty
	}
	if len(id) > 32 {
		return errors.Wrap(errors.ErrInput, "must be at most 32 bytes")
	}
	return nil
}

func NewCollectionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("collection", &Collection{},
		orm.WithIDSequence(collectionSeq),
	)
	return migration.NewModelBucket("collectibles", b)
}

// collectionSeq generates collection IDs.
var collectionSeq = orm.NewSequence("collection", "id")

func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket("token", &Token{},
		orm.WithIndex("owner", idxTokenOwner, false),
	)
	return migration.NewModelBucket("collectibles", b)
}

func idxTokenOwner(obj orm.Object) ([]byte, error) {
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Token")
	}
	return t.Owner, nil
}

// TokenKey is the primary key of a token. Collection IDs are fixed
// length sequence values so the concatenation is unambiguous.
func TokenKey(collectionID, tokenID []byte) []byte {
	return append(append([]byte{}, collectionID...), tokenID...)
}
