package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"doce-festa/go_backend/internal/domain/rental"
)

// codec maps one record type to CSV rows. Legacy lists headers written by
// earlier versions of the tool that are still accepted on load.
type codec[T any] struct {
	kind   string
	header []string
	legacy [][]string
	decode func(row []string) (T, error)
	encode func(T) []string
}

// File is a rental.Collection stored as a CSV file with a header row.
// Every save rewrites the whole file through a temp file and a rename.
type File[T any] struct {
	path  string
	codec codec[T]
}

var (
	_ rental.Collection[rental.Client]   = (*File[rental.Client])(nil)
	_ rental.Collection[rental.Material] = (*File[rental.Material])(nil)
)

func (f *File[T]) Path() string { return f.path }

// Load reads every record. A missing or empty file yields no records.
func (f *File[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", f.codec.kind, f.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", f.codec.kind, err)
	}
	if !f.headerKnown(header) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", f.codec.kind, f.codec.header, header)
	}

	records := []T{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read %s CSV: %w", f.codec.kind, err)
		}
		if len(row) != len(f.codec.header) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", f.codec.kind, line, len(f.codec.header), len(row))
		}
		rec, err := f.codec.decode(row)
		if err != nil {
			return nil, fmt.Errorf("%s CSV row %d: %w", f.codec.kind, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// AppendAndSave loads the current snapshot, appends record and writes the
// whole collection back.
func (f *File[T]) AppendAndSave(ctx context.Context, record T) error {
	records, err := f.Load(ctx)
	if err != nil {
		return err
	}
	return f.save(append(records, record))
}

func (f *File[T]) save(records []T) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s dir: %w", f.codec.kind, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", f.codec.kind, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(f.codec.header); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s CSV: %w", f.codec.kind, err)
	}
	for _, r := range records {
		if err := w.Write(f.codec.encode(r)); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s CSV: %w", f.codec.kind, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s CSV: %w", f.codec.kind, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s CSV: %w", f.codec.kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s CSV: %w", f.codec.kind, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s file %s: %w", f.codec.kind, f.path, err)
	}
	return nil
}

func (f *File[T]) headerKnown(header []string) bool {
	if validateHeader(header, f.codec.header) {
		return true
	}
	for _, h := range f.codec.legacy {
		if validateHeader(header, h) {
			return true
		}
	}
	return false
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		got := strings.TrimSpace(strings.TrimPrefix(actual[i], "\ufeff"))
		if !strings.EqualFold(got, col) {
			return false
		}
	}
	return true
}
