package storage

import (
	"context"
	"time"
)

// NPCClassRecord is one exported NPC class.
type NPCClassRecord struct {
	ID string
	// Position is the load order of the class, starting at 0.
	Position       int
	Name           string
	JobDescription string
	Common         bool
	// Bonuses hold the distribution shape, e.g. "2d6+1".
	BonusStr   string
	BonusDex   string
	BonusInt   string
	BonusPer   string
	ExportedAt time.Time
}

// NPCClassExporter replaces the stored NPC classes with a new snapshot.
type NPCClassExporter interface {
	ReplaceNPCClasses(ctx context.Context, records []NPCClassRecord) error
}

// NPCClassReader lists stored NPC classes in position order.
type NPCClassReader interface {
	ListNPCClasses(ctx context.Context) ([]NPCClassRecord, error)
}
