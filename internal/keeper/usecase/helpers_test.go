package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgerror"
)

type testStore struct {
	mu       sync.Mutex
	tables   map[string]entity.Table
	written  map[string]entity.Table
	writeErr error
	panicOn  string
}

func newTestStore() *testStore {
	return &testStore{
		tables:  make(map[string]entity.Table),
		written: make(map[string]entity.Table),
	}
}

func (s *testStore) ReadTable(ctx context.Context, path string) (entity.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path == s.panicOn {
		panic("reader exploded")
	}
	t, ok := s.tables[path]
	if !ok {
		return entity.Table{}, pkgerror.NewNotFound(path)
	}
	return t, nil
}

func (s *testStore) WriteTable(ctx context.Context, path string, table entity.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.written[path] = table
	return nil
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

type testLog struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLog) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *testLog) InfoContext(_ context.Context, msg string, args ...any) {
	l.add("info", msg, args)
}

func (l *testLog) WarnContext(_ context.Context, msg string, args ...any) {
	l.add("warn", msg, args)
}

func (l *testLog) ErrorContext(_ context.Context, msg string, args ...any) {
	l.add("error", msg, args)
}

func (l *testLog) count(level, msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level && (msg == "" || e.msg == msg) {
			n++
		}
	}
	return n
}

// attr returns the value logged for key on the first entry with msg.
func (l *testLog) attr(msg, key string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.msg != msg {
			continue
		}
		for i := 0; i+1 < len(e.args); i += 2 {
			if k, ok := e.args[i].(string); ok && k == key {
				return fmt.Sprint(e.args[i+1]), true
			}
		}
	}
	return "", false
}

type testReporter struct {
	path    string
	reports []Report
	err     error
}

func (r *testReporter) WriteReport(_ context.Context, path string, report Report) error {
	if r.err != nil {
		return r.err
	}
	r.path = path
	r.reports = append(r.reports, report)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

var errDiskFull = errors.New("disk full")

func rosterTable(rows ...[]string) entity.Table {
	return entity.Table{Header: []string{"Player", "PlayerId", "Pos", "2024_Salary"}, Rows: rows}
}

func keeperTable(rows ...[]string) entity.Table {
	return entity.Table{Header: []string{"Player", "Team", "24_Salary", "25_Salary"}, Rows: rows}
}

func importTable(rows ...[]string) entity.Table {
	return entity.Table{Header: []string{"PlayerId", "Name"}, Rows: rows}
}

func baseRequest() Request {
	return Request{
		RosterPath:  "roster.csv",
		KeepersPath: "keepers.csv",
		ImportPath:  "import.csv",
		OutputPath:  "final.csv",
		Columns:     DefaultColumns(),
		Tolerance:   DefaultTolerance,
	}
}
