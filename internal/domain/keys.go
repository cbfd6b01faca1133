package domain

type CtxKey string

const (
	// KeyIdentity carries the transport-verified caller address. It is the
	// only identity value any operation trusts.
	KeyIdentity CtxKey = "Identity"
)
