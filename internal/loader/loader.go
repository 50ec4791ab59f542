// Package loader imports the Motor Vehicle Collisions dataset into a
// target database, giving the benchmark queries something real to chew
// on. Input is the NYC Open Data TSV export, optionally gzip- or
// zstd-compressed.
package loader

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"

	"github.com/schollz/progressbar/v3"

	"sqlbench/internal/driver"
	"sqlbench/internal/errors"
	"sqlbench/internal/logger"
)

// DefaultBatchSize is the number of rows per insert transaction.
const DefaultBatchSize = 500

// Loader streams a dataset file into one database target.
type Loader struct {
	db        *sql.DB
	drv       *driver.Driver
	log       logger.Logger
	batchSize int
	progress  bool
}

// Result counts the outcome of one import.
type Result struct {
	Inserted int64
	Skipped  int64
}

// New creates a loader for an open connection. batchSize <= 0 selects
// the default; progress controls the console progress bar.
func New(db *sql.DB, drv *driver.Driver, log logger.Logger, batchSize int, progress bool) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Loader{db: db, drv: drv, log: log, batchSize: batchSize, progress: progress}
}

// EnsureSchema creates the crash_data table if it does not exist.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, createTableSQL); err != nil {
		return errors.NewDataError(errors.ErrCodeLoadFailed,
			fmt.Sprintf("create table failed: %v", err),
			"check the connected user's DDL privileges").WithCause(err)
	}
	return nil
}

// Load streams the file into crash_data. Malformed rows are skipped and
// counted; I/O, transaction and engine failures abort the import.
func (l *Loader) Load(ctx context.Context, path string) (Result, error) {
	in, _, err := openInput(path)
	if err != nil {
		return Result{}, errors.NewDataError(errors.ErrCodeLoadFailed,
			err.Error(), "check the dataset path").WithCause(err)
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	// Header row.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Result{}, errors.NewDataError(errors.ErrCodeLoadFailed,
				fmt.Sprintf("read header: %v", err), "").WithCause(err)
		}
		return Result{}, errors.NewDataError(errors.ErrCodeLoadFailed,
			"dataset is empty", "the file must start with a header row")
	}
	l.log.Debug("Header skipped", "header", scanner.Text())

	var bar *progressbar.ProgressBar
	if l.progress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("importing rows"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		)
	}

	var res Result
	batch := newBatcher(l.db, insertSQL(l.drv.Placeholder), l.batchSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			batch.abort()
			return res, err
		}

		fields := splitLine(scanner.Text())
		rec, err := parseRecord(fields)
		if err != nil {
			res.Skipped++
			if res.Skipped <= 5 {
				l.log.Warn("Skipping row", "error", err)
			}
			continue
		}

		if err := batch.add(ctx, rec); err != nil {
			// An engine-rejected row (duplicate id, type mismatch)
			// poisons the whole transaction on some engines, so it
			// aborts the import rather than being skipped.
			batch.abort()
			return res, err
		}
		res.Inserted++
		if bar != nil {
			bar.Add(1)
		}
	}
	if err := scanner.Err(); err != nil {
		batch.abort()
		return res, errors.NewDataError(errors.ErrCodeLoadFailed,
			fmt.Sprintf("read dataset: %v", err), "").WithCause(err)
	}

	if err := batch.flush(ctx); err != nil {
		return res, err
	}
	if bar != nil {
		bar.Finish()
	}

	l.log.Info("Import finished", "rows", res.Inserted, "skipped", res.Skipped)
	return res, nil
}

// batcher groups inserts into transactions of batchSize rows.
type batcher struct {
	db    *sql.DB
	query string
	size  int

	tx    *sql.Tx
	stmt  *sql.Stmt
	count int
}

func newBatcher(db *sql.DB, query string, size int) *batcher {
	return &batcher{db: db, query: query, size: size}
}

func (b *batcher) add(ctx context.Context, rec []any) error {
	if b.tx == nil {
		tx, err := b.db.BeginTx(ctx, nil)
		if err != nil {
			return errors.NewDataError(errors.ErrCodeLoadFailed,
				fmt.Sprintf("begin transaction: %v", err), "").WithCause(err)
		}
		stmt, err := tx.PrepareContext(ctx, b.query)
		if err != nil {
			tx.Rollback()
			return errors.NewDataError(errors.ErrCodeLoadFailed,
				fmt.Sprintf("prepare insert: %v", err), "").WithCause(err)
		}
		b.tx, b.stmt = tx, stmt
	}

	if _, err := b.stmt.ExecContext(ctx, rec...); err != nil {
		return errors.NewDataError(errors.ErrCodeLoadFailed,
			fmt.Sprintf("insert rejected: %v", err),
			"deduplicate the dataset or drop the existing table").WithCause(err)
	}

	b.count++
	if b.count >= b.size {
		return b.flush(ctx)
	}
	return nil
}

func (b *batcher) flush(ctx context.Context) error {
	if b.tx == nil {
		return nil
	}
	b.stmt.Close()
	err := b.tx.Commit()
	b.tx, b.stmt, b.count = nil, nil, 0
	if err != nil {
		return errors.NewDataError(errors.ErrCodeLoadFailed,
			fmt.Sprintf("commit batch: %v", err), "").WithCause(err)
	}
	return nil
}

func (b *batcher) abort() {
	if b.tx != nil {
		b.stmt.Close()
		b.tx.Rollback()
		b.tx, b.stmt, b.count = nil, nil, 0
	}
}
