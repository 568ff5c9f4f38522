// Package npcclass parses npcclass command flags and runs the NPC class
// loader: it loads a data directory, checks it against the legacy class table,
// prints a summary and optionally exports the catalog to SQLite.
package npcclass

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"

	"github.com/louisbranch/gamedata/internal/content"
	"github.com/louisbranch/gamedata/internal/core/distribution"
	classes "github.com/louisbranch/gamedata/internal/npcclass"
	entrypoint "github.com/louisbranch/gamedata/internal/platform/cmd"
	"github.com/louisbranch/gamedata/internal/platform/diag"
	"github.com/louisbranch/gamedata/internal/random"
	"github.com/louisbranch/gamedata/internal/storage"
	storagesqlite "github.com/louisbranch/gamedata/internal/storage/sqlite"
)

// ErrInconsistent is returned in strict mode when loaded data disagrees with
// the legacy class table.
var ErrInconsistent = errors.New("npc classes are inconsistent with legacy ids")

// Config holds npcclass command configuration.
type Config struct {
	Dir      string `env:"GAMEDATA_NPCCLASS_DATA_DIR"`
	Locale   string `env:"GAMEDATA_NPCCLASS_LOCALE" envDefault:"en-US"`
	Seed     int64  `env:"GAMEDATA_NPCCLASS_SEED"`
	Samples  int    `env:"GAMEDATA_NPCCLASS_SAMPLES"`
	ExportDB string `env:"GAMEDATA_NPCCLASS_EXPORT_DB"`
	Strict   bool   `env:"GAMEDATA_NPCCLASS_STRICT"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory of npc class data files")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used for names and job descriptions")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for sample rolls (0 picks one)")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "attribute rolls to print per class")
	fs.StringVar(&cfg.ExportDB, "export-db", cfg.ExportDB, "SQLite database to export the classes to")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail when legacy class ids are missing")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return errors.New("dir is required")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if c.Samples < 0 {
		return errors.New("samples must not be negative")
	}
	return nil
}

// Run loads the classes and reports on them to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ToolNPCClass, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	tag := language.Make(cfg.Locale)

	var diagnostics atomic.Int64
	logger := diag.Logger{Logger: log.Default()}
	catalog := classes.NewCatalog(diag.ReporterFunc(func(err error) {
		diagnostics.Add(1)
		logger.Report(err)
	}))

	loader := content.NewLoader()
	loader.Register(classes.TypeName, catalog.LoadClass)
	loader.AddFinalizer(catalog.CheckConsistency)

	stats, loadErr := loader.LoadDir(ctx, cfg.Dir)
	if loadErr != nil && stats.Files == 0 {
		return fmt.Errorf("load %s: %w", cfg.Dir, loadErr)
	}

	if _, err := fmt.Fprintf(out, "loaded %d npc class(es) from %d file(s): %d failed, %d skipped, %d diagnostic(s)\n",
		catalog.Len(), stats.Files, stats.Failed, stats.Skipped, diagnostics.Load()); err != nil {
		return err
	}
	if err := writeSummary(out, catalog.All(), tag); err != nil {
		return err
	}

	if cfg.Samples > 0 {
		seed := cfg.Seed
		if seed == 0 {
			var err error
			if seed, err = random.NewSeed(); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
		if err := writeSamples(out, catalog, random.New(seed), seed, cfg.Samples); err != nil {
			return err
		}
	}

	if cfg.ExportDB != "" {
		if err := export(ctx, cfg.ExportDB, catalog.All(), tag, time.Now().UTC()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "exported %d npc class(es) into %s\n", catalog.Len(), cfg.ExportDB); err != nil {
			return err
		}
	}

	if loadErr != nil {
		return fmt.Errorf("load %s: %w", cfg.Dir, loadErr)
	}
	if cfg.Strict && stats.Problems > 0 {
		return fmt.Errorf("%w: %d missing", ErrInconsistent, stats.Problems)
	}
	return nil
}

func writeSummary(out io.Writer, all []classes.Class, tag language.Tag) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMMON\tSTR\tDEX\tINT\tPER")
	for _, class := range all {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\t%s\t%s\n",
			class.ID, class.DisplayName(tag), class.Common,
			bonusCell(class.BonusStr), bonusCell(class.BonusDex),
			bonusCell(class.BonusInt), bonusCell(class.BonusPer))
	}
	return w.Flush()
}

// bonusCell renders a bonus with its reachable range, e.g. "1d4 [1..4]".
func bonusCell(d distribution.Distribution) string {
	lo, hi := d.Bounds()
	if lo == hi {
		return d.String()
	}
	return fmt.Sprintf("%s [%g..%g]", d, lo, hi)
}

func writeSamples(out io.Writer, catalog *classes.Catalog, src random.Source, seed int64, samples int) error {
	if _, err := fmt.Fprintf(out, "sample rolls (seed %d)\n", seed); err != nil {
		return err
	}
	for _, class := range catalog.All() {
		for i := 0; i < samples; i++ {
			if _, err := fmt.Fprintf(out, "%s\tstr=%d dex=%d int=%d per=%d\n", class.ID,
				class.RollStrength(src), class.RollDexterity(src),
				class.RollIntelligence(src), class.RollPerception(src)); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(out, "random common class: %s\n", catalog.RandomCommon(src)); err != nil {
		return err
	}
	return nil
}

func export(ctx context.Context, path string, all []classes.Class, tag language.Tag, now time.Time) error {
	store, err := storagesqlite.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open export store: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceNPCClasses(ctx, exportRecords(all, tag, now)); err != nil {
		return fmt.Errorf("export npc classes: %w", err)
	}
	return nil
}

// exportRecords flattens classes into storage rows, resolving text for tag.
func exportRecords(all []classes.Class, tag language.Tag, now time.Time) []storage.NPCClassRecord {
	records := make([]storage.NPCClassRecord, 0, len(all))
	for i, class := range all {
		records = append(records, storage.NPCClassRecord{
			ID:             class.ID.String(),
			Position:       i,
			Name:           class.DisplayName(tag),
			JobDescription: class.DisplayJobDescription(tag),
			Common:         class.Common,
			BonusStr:       class.BonusStr.String(),
			BonusDex:       class.BonusDex.String(),
			BonusInt:       class.BonusInt.String(),
			BonusPer:       class.BonusPer.String(),
			ExportedAt:     now,
		})
	}
	return records
}
