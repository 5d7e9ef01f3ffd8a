// Package store exports loaded results to a SQL database so that runs can be
// compared with ad-hoc queries. SQLite and MySQL are supported.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"

	"github.com/cyarp/commchar/results"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	_ "github.com/mattn/go-sqlite3"    // sqlite3 driver
)

// DB is a results database. It is safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB

	insertRun     *sql.Stmt
	insertSummary *sql.Stmt
	insertRow     *sql.Stmt
}

// OpenSQL opens a results database and creates any missing tables. The
// parameters are the same as for sql.Open. Only "mysql" and "sqlite3" are
// supported.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	switch driverName {
	case "mysql", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driverName)
	}
	conn, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite3" {
		// an in-memory database lives only as long as its connection
		conn.SetMaxOpenConns(1)
	}
	db := &DB{sql: conn}
	if err := db.createTables(driverName); err != nil {
		conn.Close()
		return nil, err
	}
	if err := db.prepareStatements(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Name VARCHAR(255) NOT NULL
);
CREATE TABLE IF NOT EXISTS Summaries (
	RunID BIGINT UNSIGNED,
	BlkSizeBytes BIGINT,
	Category VARCHAR(255),
	Kind VARCHAR(16),
	Trials INT,
	AvgGbps DOUBLE,
	MinGbps DOUBLE,
	MaxGbps DOUBLE,
	PRIMARY KEY (RunID, BlkSizeBytes, Category),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS ResultRows (
	RunID BIGINT UNSIGNED,
	BlkSizeBytes BIGINT,
	Category VARCHAR(255),
	RowID BIGINT UNSIGNED,
	Label VARCHAR(255),
	Gbps DOUBLE,
	PRIMARY KEY (RunID, BlkSizeBytes, Category, RowID),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (db *DB) prepareStatements() (err error) {
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Name) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertSummary, err = db.sql.Prepare("INSERT INTO Summaries(RunID, BlkSizeBytes, Category, Kind, Trials, AvgGbps, MinGbps, MaxGbps) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertRow, err = db.sql.Prepare("INSERT INTO ResultRows(RunID, BlkSizeBytes, Category, RowID, Label, Gbps) VALUES (?, ?, ?, ?, ?, ?)")
	return err
}

// Close closes the database.
func (db *DB) Close() error {
	return db.sql.Close()
}

// InsertSweep stores every point of the sweep under a new run and returns its ID.
// A single report directory is stored as a sweep with one point of block size 0.
// Results without rows are skipped. The run is stored in a single transaction.
func (db *DB) InsertSweep(ctx context.Context, name string, sweep *results.Sweep) (runID int64, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, name)
	if err != nil {
		return 0, err
	}
	runID, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}
	summary := tx.StmtContext(ctx, db.insertSummary)
	row := tx.StmtContext(ctx, db.insertRow)
	for _, p := range sweep.Points {
		for _, category := range p.Results.Names() {
			r := p.Results[category]
			if r.Len() == 0 {
				continue
			}
			s, err := results.Summarize(r)
			if err != nil {
				return 0, err
			}
			if _, err := summary.ExecContext(ctx, runID, p.BlockSizeBytes, category, s.Kind.String(), s.Trials, s.AvgGbps, s.MinGbps, s.MaxGbps); err != nil {
				return 0, fmt.Errorf("insert summary of %q: %w", category, err)
			}
			labels := r.Labels()
			for i, rate := range r.Rates() {
				if _, err := row.ExecContext(ctx, runID, p.BlockSizeBytes, category, i, labels[i], rate); err != nil {
					return 0, fmt.Errorf("insert row %d of %q: %w", i, category, err)
				}
			}
		}
	}
	return runID, nil
}

// InsertResults stores the results of a single report directory.
func (db *DB) InsertResults(ctx context.Context, name string, res results.Results) (int64, error) {
	return db.InsertSweep(ctx, name, &results.Sweep{
		BlockSizesBytes: []int{0},
		Points:          []results.SweepPoint{{Results: res}},
	})
}

// StoredSummary is a summary read back from the database.
type StoredSummary struct {
	BlkSizeBytes int
	results.Summary
}

// Summaries returns the summaries of a run ordered by block size and category.
func (db *DB) Summaries(ctx context.Context, runID int64) ([]StoredSummary, error) {
	rows, err := db.sql.QueryContext(ctx,
		"SELECT BlkSizeBytes, Category, Kind, Trials, AvgGbps, MinGbps, MaxGbps FROM Summaries WHERE RunID = ? ORDER BY BlkSizeBytes, Category",
		runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var summaries []StoredSummary
	for rows.Next() {
		var (
			s    StoredSummary
			kind string
		)
		if err := rows.Scan(&s.BlkSizeBytes, &s.Name, &kind, &s.Trials, &s.AvgGbps, &s.MinGbps, &s.MaxGbps); err != nil {
			return nil, err
		}
		if s.Kind, err = results.ParseKind(kind); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// CountRows returns the number of result rows stored for a run.
func (db *DB) CountRows(ctx context.Context, runID int64) (n int, err error) {
	err = db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM ResultRows WHERE RunID = ?", runID).Scan(&n)
	return n, err
}
