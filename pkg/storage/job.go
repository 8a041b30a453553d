package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the jobs into the underlying
// queue backend. Each river.InsertManyParams carries the job payload and
// optional insert options (queue name, scheduled time, max attempts).
//
// Typical implementations live under pkg/storage/<backend>/ and are used via
// the higher-level Storage or TxStorage interfaces.
//
// Example:
//
//	n, err := storage.AddJobs(ctx, []river.InsertManyParams{{Args: MyJobArgs{}}})
//	if err != nil { /* handle error */ }
type JobStorage interface {
	// AddJobs enqueues the given jobs and returns how many were inserted. It
	// should be atomic with respect to any surrounding transaction when
	// supported by the backend.
	AddJobs(ctx context.Context, jobs []river.InsertManyParams) (int, error)
}
