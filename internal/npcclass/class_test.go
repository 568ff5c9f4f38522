package npcclass

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/louisbranch/gamedata/internal/core/distribution"
	"github.com/louisbranch/gamedata/internal/platform/diag"
	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
	"github.com/louisbranch/gamedata/internal/random"
)

func mustObject(t *testing.T, raw string) *jsondata.Object {
	t.Helper()
	src, err := jsondata.NewSource("classes.json", []byte(raw))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	obj, err := src.Root().Object()
	if err != nil {
		t.Fatalf("root object: %v", err)
	}
	return obj
}

func mustLoadClass(t *testing.T, c *Catalog, raw string) {
	t.Helper()
	if err := c.LoadClass(mustObject(t, raw)); err != nil {
		t.Fatalf("load class: %v", err)
	}
}

func TestLoadClassDefaults(t *testing.T) {
	c := NewCatalog(&diag.Recorder{})
	mustLoadClass(t, c, `{"id": "NC_TEST", "name": "Tester", "job_description": "I test things."}`)

	class := c.Obj("NC_TEST")
	if class.ID != "NC_TEST" {
		t.Fatalf("id = %q, want NC_TEST", class.ID)
	}
	if got := class.Name.String(); got != "Tester" {
		t.Fatalf("name = %q, want Tester", got)
	}
	if !class.Common {
		t.Fatal("expected common to default to true")
	}
	for _, bonus := range []distribution.Distribution{class.BonusStr, class.BonusDex, class.BonusInt, class.BonusPer} {
		if bonus.Kind() != distribution.KindZero {
			t.Fatalf("bonus kind = %v, want zero", bonus.Kind())
		}
	}
}

func TestLoadClassRequiresName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing name", raw: `{"id": "NC_TEST", "job_description": "x"}`},
		{name: "missing job description", raw: `{"id": "NC_TEST", "name": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(&diag.Recorder{})
			err := c.LoadClass(mustObject(t, tt.raw))
			if !apperrors.IsCode(err, apperrors.CodeMissingField) {
				t.Fatalf("err = %v, want missing field", err)
			}
			if c.IsValid("NC_TEST") {
				t.Fatal("expected failed class to stay unloaded")
			}
		})
	}
}

func TestLoadClassReadsBonuses(t *testing.T) {
	c := NewCatalog(&diag.Recorder{})
	mustLoadClass(t, c, `{
		"id": "NC_TEST",
		"name": "Tester",
		"job_description": "I test things.",
		"common": false,
		"bonus_str": 2,
		"bonus_dex": {"dice": [1, 4]},
		"bonus_int": {"rng": [-1, 1]},
		"bonus_per": {"sum": [{"constant": 1}, {"one_in": 2}]}
	}`)

	class := c.Obj("NC_TEST")
	if class.Common {
		t.Fatal("expected common to be false")
	}
	wantKinds := map[string]distribution.Kind{
		"bonus_str": distribution.KindConstant,
		"bonus_dex": distribution.KindDice,
		"bonus_int": distribution.KindRange,
		"bonus_per": distribution.KindSum,
	}
	gotKinds := map[string]distribution.Kind{
		"bonus_str": class.BonusStr.Kind(),
		"bonus_dex": class.BonusDex.Kind(),
		"bonus_int": class.BonusInt.Kind(),
		"bonus_per": class.BonusPer.Kind(),
	}
	for field, want := range wantKinds {
		if got := gotKinds[field]; got != want {
			t.Fatalf("%s kind = %v, want %v", field, got, want)
		}
	}
}

func TestReloadKeepsUnmentionedFields(t *testing.T) {
	c := NewCatalog(&diag.Recorder{})
	mustLoadClass(t, c, `{"id": "NC_TEST", "name": "Tester", "job_description": "I test.", "common": false, "bonus_str": 3}`)
	mustLoadClass(t, c, `{"id": "NC_TEST", "bonus_dex": 1}`)

	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
	class := c.Obj("NC_TEST")
	if class.Name.String() != "Tester" {
		t.Fatalf("name = %q, want Tester", class.Name.String())
	}
	if class.Common {
		t.Fatal("expected common to stay false across reload")
	}
	if class.BonusStr.String() != "3" || class.BonusDex.String() != "1" {
		t.Fatalf("bonuses = %s/%s, want 3/1", class.BonusStr, class.BonusDex)
	}
}

func TestInvalidBonusIsReportedAndZeroed(t *testing.T) {
	rec := &diag.Recorder{}
	c := NewCatalog(rec)
	mustLoadClass(t, c, `{"id": "NC_TEST", "name": "Tester", "job_description": "x", "bonus_str": {"dice": [0, 6]}}`)

	if got := c.Obj("NC_TEST").BonusStr.Kind(); got != distribution.KindZero {
		t.Fatalf("bonus kind = %v, want zero", got)
	}
	if rec.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", rec.Len())
	}
}

func TestRollAttributesStayInRange(t *testing.T) {
	c := NewCatalog(&diag.Recorder{})
	mustLoadClass(t, c, `{"id": "NC_TEST", "name": "Tester", "job_description": "x", "bonus_str": 2, "bonus_per": {"rng": [-4, -4]}}`)
	class := c.Obj("NC_TEST")
	src := random.New(42)

	for i := 0; i < 200; i++ {
		if got := class.RollStrength(src); got < 6 || got > 14 {
			t.Fatalf("strength = %d, want 6..14", got)
		}
		if got := class.RollDexterity(src); got < 4 || got > 12 {
			t.Fatalf("dexterity = %d, want 4..12", got)
		}
		if got := class.RollIntelligence(src); got < 4 || got > 12 {
			t.Fatalf("intelligence = %d, want 4..12", got)
		}
		if got := class.RollPerception(src); got < 0 || got > 8 {
			t.Fatalf("perception = %d, want 0..8", got)
		}
	}
}

func TestRollTruncatesFractionalBonus(t *testing.T) {
	class := Class{BonusStr: distribution.Constant(0.5)}
	src := random.New(7)
	for i := 0; i < 50; i++ {
		if got := class.RollStrength(src); got < 4 || got > 12 {
			t.Fatalf("strength = %d, want 4..12", got)
		}
	}
}

func TestDisplayTextUsesTranslations(t *testing.T) {
	c := NewCatalog(&diag.Recorder{})
	mustLoadClass(t, c, `{
		"id": "NC_TEST",
		"name": {"str": "Doctor", "i18n": {"pt-BR": "Médico"}},
		"job_description": "I heal."
	}`)
	class := c.Obj("NC_TEST")

	if got := class.DisplayName(language.BrazilianPortuguese); got != "Médico" {
		t.Fatalf("pt-BR name = %q, want Médico", got)
	}
	if got := class.DisplayName(language.AmericanEnglish); got != "Doctor" {
		t.Fatalf("en-US name = %q, want Doctor", got)
	}
	if got := class.DisplayJobDescription(language.BrazilianPortuguese); got != "I heal." {
		t.Fatalf("job description = %q, want I heal.", got)
	}
}
