package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
)

// Generator issues random (v4) UUIDs.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
