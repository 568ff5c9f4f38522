package npcclass

import (
	"fmt"

	"github.com/louisbranch/gamedata/internal/core/factory"
	"github.com/louisbranch/gamedata/internal/platform/diag"
	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
	"github.com/louisbranch/gamedata/internal/random"
)

// Catalog owns the loaded NPC classes.
//
// Loading (LoadClass, Reset) happens on one goroutine before any query runs.
// After that the query methods are safe for concurrent use, given each caller
// rolls with its own random source or random.Default.
type Catalog struct {
	classes *factory.Factory[Class]
	report  diag.Reporter
}

// NewCatalog returns an empty catalog. Non-fatal problems go to report, or to
// the standard logger when report is nil.
func NewCatalog(report diag.Reporter) *Catalog {
	c := &Catalog{report: diag.Or(report)}
	c.classes = factory.New(TypeName, nullClass(), func(obj *jsondata.Object, id ID, def *Class, wasLoaded bool) error {
		return def.load(obj, id, wasLoaded, c.report)
	})
	return c
}

// LoadClass loads one class object. A class loaded before under the same id is
// updated in place.
func (c *Catalog) LoadClass(obj *jsondata.Object) error {
	_, err := c.classes.Load(obj)
	return err
}

// Reset drops every loaded class.
func (c *Catalog) Reset() {
	c.classes.Reset()
}

// IsValid reports whether id names a loaded class.
func (c *Catalog) IsValid(id ID) bool {
	return c.classes.IsValid(id)
}

// Obj returns the class for id, or the null class when it is not loaded.
func (c *Catalog) Obj(id ID) Class {
	return c.classes.Obj(id)
}

// All returns every loaded class in load order. The slice must not be
// modified and is invalidated by the next load or reset.
func (c *Catalog) All() []Class {
	return c.classes.All()
}

// Len returns the number of loaded classes.
func (c *Catalog) Len() int {
	return c.classes.Len()
}

// FromLegacyInt maps a numeric class id from old saves to its class id.
// Indexes outside the legacy table are reported and yield NullID.
func (c *Catalog) FromLegacyInt(i int) ID {
	id, err := legacyID(i)
	if err != nil {
		c.report.Report(err)
	}
	return id
}

// CheckConsistency reports every legacy class that is not loaded. Run it once
// all data sources are in. The reported problems are also returned.
func (c *Catalog) CheckConsistency() []error {
	var problems []error
	for _, legacy := range legacyIDs {
		if c.classes.IsValid(legacy) {
			continue
		}
		err := apperrors.WithMetadata(
			apperrors.CodeLegacyIDMissing,
			fmt.Sprintf("Missing legacy npc class %s", legacy),
			map[string]string{apperrors.MetaID: legacy.String()},
		)
		c.report.Report(err)
		problems = append(problems, err)
	}
	return problems
}

// RandomCommon picks one common class uniformly at random. It returns NullID
// when no loaded class is common.
func (c *Catalog) RandomCommon(src random.Source) ID {
	var common []ID
	for _, class := range c.classes.All() {
		if class.Common {
			common = append(common, class.ID)
		}
	}
	if len(common) == 0 {
		return NullID
	}
	return common[random.Or(src).IntN(len(common))]
}
