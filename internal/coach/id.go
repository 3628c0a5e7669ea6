package coach

import "github.com/google/uuid"

// IDGenerator supplies plan ids. Injected so that plan output is fully
// deterministic under test with a fixed generator.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// FixedIDGenerator always returns the same id. Intended for tests.
type FixedIDGenerator string

func (g FixedIDGenerator) NewID() string {
	return string(g)
}
