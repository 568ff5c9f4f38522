// Package content loads typed data objects from files into the registries
// that own them.
//
// A data file holds one object or an array of objects. Every object names its
// kind in a "type" member, and the loader hands it to the handler registered
// for that kind. A bad object fails alone: the loader collects its error and
// moves on, so one typo does not hide the rest of the data.
package content

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
	"github.com/louisbranch/gamedata/internal/platform/otel"
)

// Handler loads one data object.
type Handler func(obj *jsondata.Object) error

// Finalizer runs once every source is loaded. The problems it returns are
// non-fatal; it is expected to have reported them already.
type Finalizer func() []error

// Stats counts what a load saw.
type Stats struct {
	Files   int
	Objects int
	Loaded  int
	Failed  int
	// Skipped objects have a type no handler is registered for.
	Skipped int
	// Problems found by finalizers.
	Problems int
}

func (s *Stats) add(other Stats) {
	s.Files += other.Files
	s.Objects += other.Objects
	s.Loaded += other.Loaded
	s.Failed += other.Failed
	s.Skipped += other.Skipped
	s.Problems += other.Problems
}

// Loader dispatches data objects by type.
type Loader struct {
	handlers   map[string]Handler
	finalizers []Finalizer
	tracer     trace.Tracer
}

// NewLoader returns a loader with no handlers.
func NewLoader() *Loader {
	return &Loader{
		handlers: map[string]Handler{},
		tracer:   otel.Tracer(),
	}
}

// Register sets the handler for objects of typeName, replacing any previous
// one.
func (l *Loader) Register(typeName string, h Handler) {
	l.handlers[typeName] = h
}

// AddFinalizer queues f to run after LoadDir has read every file.
func (l *Loader) AddFinalizer(f Finalizer) {
	l.finalizers = append(l.finalizers, f)
}

// LoadDir loads every .json, .yaml and .yml file under dir in lexical path
// order, then runs the finalizers. The returned error joins every failure;
// objects that loaded stay loaded either way.
func (l *Loader) LoadDir(ctx context.Context, dir string) (Stats, error) {
	ctx, span := l.tracer.Start(ctx, "content.LoadDir", trace.WithAttributes(attribute.String("content.dir", dir)))
	defer span.End()

	var stats Stats
	paths, err := dataFiles(dir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list data files")
		return stats, err
	}

	var result *multierror.Error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}
		fileStats, err := l.LoadFile(ctx, path)
		stats.add(fileStats)
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	stats.Problems = len(l.Finalize(ctx))

	span.SetAttributes(
		attribute.Int("content.files", stats.Files),
		attribute.Int("content.loaded", stats.Loaded),
		attribute.Int("content.failed", stats.Failed),
		attribute.Int("content.skipped", stats.Skipped),
		attribute.Int("content.problems", stats.Problems),
	)
	if err := result.ErrorOrNil(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load data files")
		return stats, err
	}
	return stats, nil
}

// LoadFile loads the objects of one data file.
func (l *Loader) LoadFile(ctx context.Context, path string) (Stats, error) {
	ctx, span := l.tracer.Start(ctx, "content.LoadFile", trace.WithAttributes(attribute.String("content.file", path)))
	defer span.End()

	src, err := ReadSource(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read data file")
		return Stats{Files: 1}, err
	}
	stats, err := l.LoadSource(ctx, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load data file")
	}
	return stats, err
}

// LoadSource loads the objects of a parsed source. Cancelling ctx stops the
// load before the next object; objects already handed over stay loaded.
func (l *Loader) LoadSource(ctx context.Context, src *jsondata.Source) (Stats, error) {
	stats := Stats{Files: 1}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	root := src.Root()

	switch {
	case root.IsObject():
		obj, err := root.Object()
		if err != nil {
			return stats, err
		}
		err = l.loadObject(obj, &stats)
		return stats, err
	case root.IsArray():
		arr, err := root.Array()
		if err != nil {
			return stats, err
		}
		var result *multierror.Error
		for arr.HasMore() {
			if err := ctx.Err(); err != nil {
				result = multierror.Append(result, err)
				break
			}
			obj, err := arr.NextObject()
			if err != nil {
				stats.Objects++
				stats.Failed++
				result = multierror.Append(result, err)
				continue
			}
			if err := l.loadObject(obj, &stats); err != nil {
				result = multierror.Append(result, err)
			}
		}
		return stats, result.ErrorOrNil()
	default:
		return stats, apperrors.WithMetadata(
			apperrors.CodeMalformedData,
			fmt.Sprintf("%s: expected an object or an array of objects", src.Name()),
			map[string]string{apperrors.MetaLocation: root.Location().String()},
		)
	}
}

func (l *Loader) loadObject(obj *jsondata.Object, stats *Stats) error {
	stats.Objects++
	typeName, err := obj.String("type")
	if err != nil {
		stats.Failed++
		return err
	}
	h, ok := l.handlers[typeName]
	if !ok {
		stats.Skipped++
		return nil
	}
	if err := h(obj); err != nil {
		stats.Failed++
		return err
	}
	stats.Loaded++
	return nil
}

// Finalize runs every finalizer in registration order and returns the
// problems they found.
func (l *Loader) Finalize(ctx context.Context) []error {
	_, span := l.tracer.Start(ctx, "content.Finalize")
	defer span.End()

	var problems []error
	for _, f := range l.finalizers {
		problems = append(problems, f()...)
	}
	span.SetAttributes(attribute.Int("content.problems", len(problems)))
	return problems
}

// dataFiles lists the data files under dir, sorted by path.
func dataFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supportedExt(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
