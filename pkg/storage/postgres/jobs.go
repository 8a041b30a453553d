package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJobs enqueues River jobs in one round trip using the underlying database handle.
//
// Behavior:
//   - If PgSQL is currently operating inside a transaction (DB is a *sql.Tx), the
//     jobs are inserted using InsertManyTx so that they participate in the
//     surrounding transaction and only become visible upon a successful commit.
//   - Otherwise, the jobs are inserted using a client bound to the *sql.DB, making
//     them immediately visible once the insert succeeds.
//
// It returns the number of jobs actually inserted; jobs skipped as unique
// duplicates are not counted.
func (p *PgSQL) AddJobs(ctx context.Context, jobs []river.InsertManyParams) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	var (
		res []*rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		riverClient, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return 0, fmt.Errorf("could not create river queue client: %w", cErr)
		}

		res, err = riverClient.InsertManyTx(ctx, tx, jobs)
	} else {
		riverClient, cErr := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
		if cErr != nil {
			return 0, fmt.Errorf("could not create river queue client: %w", cErr)
		}

		res, err = riverClient.InsertMany(ctx, jobs)
	}
	if err != nil {
		return 0, fmt.Errorf("could not insert jobs: %w", err)
	}

	inserted := 0
	for _, r := range res {
		if !r.UniqueSkippedAsDuplicate {
			inserted++
		}
	}

	return inserted, nil
}
