package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgerror"
)

const utf8BOM = "\ufeff"

// CSVStore reads and writes comma separated files with a header row.
type CSVStore struct {
	comma rune
}

func NewCSVStore() *CSVStore {
	return &CSVStore{comma: ','}
}

// ReadTable loads path into memory. Cell text is kept verbatim; only a UTF-8
// byte order mark on the first header cell is removed. Rows shorter than the
// header are padded with empty cells.
func (s *CSVStore) ReadTable(ctx context.Context, path string) (entity.Table, error) {
	if err := ctx.Err(); err != nil {
		return entity.Table{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Table{}, pkgerror.NewNotFound(path)
		}
		return entity.Table{}, pkgerror.NewIO(path, err)
	}
	defer f.Close()

	table, err := s.readTable(path, f)
	if err != nil {
		return entity.Table{}, err
	}

	slog.DebugContext(ctx, "read csv table", "path", path, "columns", len(table.Header), "rows", len(table.Rows))

	return table, nil
}

func (s *CSVStore) readTable(path string, r io.Reader) (entity.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return entity.Table{}, pkgerror.NewInvalidFormat(path, errors.New("missing header row"))
	}
	if err != nil {
		return entity.Table{}, pkgerror.NewInvalidFormat(path, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return entity.Table{}, pkgerror.NewInvalidFormat(path, err)
		}

		// short rows read as trailing empty cells, long rows are malformed
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return entity.Table{}, pkgerror.NewInvalidFormat(path,
				fmt.Errorf("record on line %d: %d fields, header has %d", line, len(record), len(header)))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	return entity.Table{Header: header, Rows: rows}, nil
}

// WriteTable writes table to path. The data goes to a temporary file in the
// same directory that is renamed over path only after a complete write, so a
// failed write leaves no partial output behind.
func (s *CSVStore) WriteTable(ctx context.Context, path string, table entity.Table) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return pkgerror.NewIO(path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	w.Comma = s.comma
	if err := w.Write(table.Header); err != nil {
		return pkgerror.NewIO(path, err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return pkgerror.NewIO(path, err)
	}

	if err := tmp.Chmod(0o644); err != nil {
		return pkgerror.NewIO(path, err)
	}
	if err := tmp.Close(); err != nil {
		return pkgerror.NewIO(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return pkgerror.NewIO(path, err)
	}

	slog.DebugContext(ctx, "wrote csv table", "path", path, "rows", len(table.Rows))

	return nil
}
