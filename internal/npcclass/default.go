package npcclass

import (
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
	"github.com/louisbranch/gamedata/internal/random"
)

// defaultCatalog is the process-wide catalog behind the package functions.
var defaultCatalog = NewCatalog(nil)

// Default returns the process-wide catalog.
func Default() *Catalog {
	return defaultCatalog
}

// LoadClass loads one class object into the default catalog.
func LoadClass(obj *jsondata.Object) error { return defaultCatalog.LoadClass(obj) }

// Reset clears the default catalog.
func Reset() { defaultCatalog.Reset() }

// IsValid reports whether id is loaded in the default catalog.
func IsValid(id ID) bool { return defaultCatalog.IsValid(id) }

// Obj returns the class for id from the default catalog.
func Obj(id ID) Class { return defaultCatalog.Obj(id) }

// All returns every class in the default catalog.
func All() []Class { return defaultCatalog.All() }

// FromLegacyInt maps a numeric legacy id using the default catalog.
func FromLegacyInt(i int) ID { return defaultCatalog.FromLegacyInt(i) }

// CheckConsistency checks the default catalog against the legacy table.
func CheckConsistency() []error { return defaultCatalog.CheckConsistency() }

// RandomCommon picks a common class from the default catalog.
func RandomCommon(src random.Source) ID { return defaultCatalog.RandomCommon(src) }
