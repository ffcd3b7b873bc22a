package repository

import "github.com/rs/xid"

// IDGenerator produces the unique part of entity ids. Stores prefix it with
// the entity name: "thread-<id>", "comment-<id>".
type IDGenerator interface {
	NewID() string
}

// XIDGenerator generates globally unique, sortable ids with rs/xid.
type XIDGenerator struct{}

func (XIDGenerator) NewID() string {
	return xid.New().String()
}

// PrefixedID joins an entity prefix and a generated id:
// PrefixedID(gen, "user") → "user-cq3f1a2o8tkc73a0ksmg".
func PrefixedID(gen IDGenerator, prefix string) string {
	return prefix + "-" + gen.NewID()
}
