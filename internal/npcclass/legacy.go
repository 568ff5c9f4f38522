package npcclass

import (
	"fmt"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
)

// legacyIDs maps the numeric class ids of old saves to class ids. Index 0 is
// the null class.
var legacyIDs = [...]ID{
	NullID,
	"NC_EVAC_SHOPKEEP",
	"NC_SHOPKEEP",
	"NC_HACKER",
	"NC_DOCTOR",
	"NC_TRADER",
	"NC_NINJA",
	"NC_COWBOY",
	"NC_SCIENTIST",
	"NC_BOUNTY_HUNTER",
	"NC_THUG",
	"NC_SCAVENGER",
	"NC_ARSONIST",
	"NC_HUNTER",
	"NC_SOLDIER",
	"NC_BARTENDER",
	"NC_JUNK_SHOPKEEP",
}

// LegacyIDs returns a copy of the legacy id table in index order.
func LegacyIDs() []ID {
	out := make([]ID, len(legacyIDs))
	copy(out, legacyIDs[:])
	return out
}

// legacyID resolves a numeric legacy id, or returns an error for indexes
// outside the table.
func legacyID(i int) (ID, error) {
	if i < 0 || i >= len(legacyIDs) {
		return NullID, apperrors.WithMetadata(
			apperrors.CodeLegacyIDOutOfRange,
			fmt.Sprintf("Invalid legacy class id: %d", i),
			map[string]string{apperrors.MetaID: fmt.Sprint(i)},
		)
	}
	return legacyIDs[i], nil
}
