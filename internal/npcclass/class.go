// Package npcclass loads NPC class definitions and answers queries about them.
package npcclass

import (
	"golang.org/x/text/language"

	"github.com/louisbranch/gamedata/internal/core/dice"
	"github.com/louisbranch/gamedata/internal/core/distribution"
	"github.com/louisbranch/gamedata/internal/core/factory"
	"github.com/louisbranch/gamedata/internal/platform/diag"
	"github.com/louisbranch/gamedata/internal/platform/i18n/text"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
	"github.com/louisbranch/gamedata/internal/random"
)

// TypeName is the "type" value of class objects in data files.
const TypeName = "npc_class"

// ID names an NPC class.
type ID = factory.StringID[Class]

// NullID names no class. Obj resolves unknown ids to a class carrying it.
const NullID ID = "NC_NONE"

// Every attribute roll starts from 4d3 before the class bonus is added.
var baseRoll = dice.Spec{Count: 4, Sides: 3}

// Class is one NPC class definition.
type Class struct {
	ID             ID
	Name           text.Text
	JobDescription text.Text
	// Common classes can be picked by RandomCommon.
	Common bool

	BonusStr distribution.Distribution
	BonusDex distribution.Distribution
	BonusInt distribution.Distribution
	BonusPer distribution.Distribution
}

// nullClass is returned for ids that are not loaded.
func nullClass() Class {
	return Class{ID: NullID}
}

// load binds the members of one class object. Reloads keep any member the
// object leaves out.
func (c *Class) load(obj *jsondata.Object, id ID, wasLoaded bool, report diag.Reporter) error {
	c.ID = id
	if err := jsondata.Mandatory(obj, wasLoaded, "name", &c.Name, text.Read); err != nil {
		return err
	}
	if err := jsondata.Mandatory(obj, wasLoaded, "job_description", &c.JobDescription, text.Read); err != nil {
		return err
	}
	if err := jsondata.Optional(obj, wasLoaded, "common", &c.Common, true, (*jsondata.Object).Bool); err != nil {
		return err
	}

	readBonus := distribution.Reader(report)
	bonuses := []struct {
		name string
		dst  *distribution.Distribution
	}{
		{"bonus_str", &c.BonusStr},
		{"bonus_dex", &c.BonusDex},
		{"bonus_int", &c.BonusInt},
		{"bonus_per", &c.BonusPer},
	}
	for _, b := range bonuses {
		if err := jsondata.Optional(obj, wasLoaded, b.name, b.dst, distribution.Zero(), readBonus); err != nil {
			return err
		}
	}
	return nil
}

// DisplayName returns the class name translated for tag.
func (c Class) DisplayName(tag language.Tag) string {
	return c.Name.Translate(tag)
}

// DisplayJobDescription returns the job description translated for tag.
func (c Class) DisplayJobDescription(tag language.Tag) string {
	return c.JobDescription.Translate(tag)
}

// RollStrength rolls a strength score: 4d3 plus the strength bonus.
func (c Class) RollStrength(src random.Source) int {
	return rollAttribute(src, c.BonusStr)
}

// RollDexterity rolls a dexterity score: 4d3 plus the dexterity bonus.
func (c Class) RollDexterity(src random.Source) int {
	return rollAttribute(src, c.BonusDex)
}

// RollIntelligence rolls an intelligence score: 4d3 plus the intelligence bonus.
func (c Class) RollIntelligence(src random.Source) int {
	return rollAttribute(src, c.BonusInt)
}

// RollPerception rolls a perception score: 4d3 plus the perception bonus.
func (c Class) RollPerception(src random.Source) int {
	return rollAttribute(src, c.BonusPer)
}

func rollAttribute(src random.Source, bonus distribution.Distribution) int {
	src = random.Or(src)
	base := dice.Sum(src, baseRoll.Count, baseRoll.Sides)
	// Fractional bonuses truncate toward zero.
	return int(float64(base) + bonus.Roll(src))
}
