package bulkimport

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/me/lettings/pkg/listings"
)

// ChunkSize is the fixed chunk width for the fallback tier. Chunks run
// strictly one after another, which bounds backend load and keeps the
// progress counters monotonic.
const ChunkSize = 30

// Gateway is the slice of the apartments API the pipeline drives. Each
// method is a single round trip with no retries of its own.
type Gateway interface {
	BatchCreateWithCommunity(ctx context.Context, records []listings.ApartmentUpload) error
	BatchByCommunity(ctx context.Context, communityID any, records []listings.ApartmentUpload) error
	Create(ctx context.Context, record listings.ApartmentUpload) (*listings.Apartment, error)
}

// Progress is the running upload aggregate.
type Progress struct {
	Total     int
	Succeeded int
	Failed    int
}

// RowFailure records one row that could not be uploaded, with enough
// context to fix and retry just that row.
type RowFailure struct {
	Index   int // zero-based data row index, in source order
	Row     Row // original raw cells, not the normalized record
	Message string
}

// Result is the completed outcome. Succeeded + Failed == Total on any
// run that was not cut short by context cancellation.
type Result struct {
	Progress
	Failures []RowFailure
}

// Uploader runs the tiered upload strategy:
//
//  1. one BatchCreateWithCommunity call for the entire set;
//  2. on failure, sequential ChunkSize chunks, a uniform-community chunk
//     going through one grouped BatchByCommunity call;
//  3. mixed chunks and failed grouped calls degrade to per-row Create,
//     recording each row's outcome independently.
//
// Every tier is tried once. This is a degradation path, not a
// retry-with-backoff policy.
type Uploader struct {
	gateway    Gateway
	logger     *slog.Logger
	chunkSize  int
	onProgress func(Progress)
}

// NewUploader creates an uploader over the given gateway.
func NewUploader(gateway Gateway, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Uploader{
		gateway:   gateway,
		logger:    logger.With("component", "bulk-import"),
		chunkSize: ChunkSize,
	}
}

// OnProgress registers a callback invoked after every completed chunk, so
// a caller can render progress while the upload is still running.
func (u *Uploader) OnProgress(fn func(Progress)) {
	u.onProgress = fn
}

// Upload validates doc and pushes every row to the backend. Validation
// failures (no rows, missing columns) abort before any network call. A
// canceled context stops the run between chunks; rows of a started chunk
// always run to completion.
func (u *Uploader) Upload(ctx context.Context, doc *Document) (*Result, error) {
	if len(doc.Rows) == 0 {
		return nil, ErrNoRows
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	logger := u.logger.With("run_id", "imp_"+uuid.New().String()[:8])

	records := make([]listings.ApartmentUpload, len(doc.Rows))
	for i, row := range doc.Rows {
		records[i] = Normalize(row)
	}
	total := len(records)
	logger.Info("starting bulk upload", "rows", total)

	err := u.gateway.BatchCreateWithCommunity(ctx, records)
	if err == nil {
		result := &Result{Progress: Progress{Total: total, Succeeded: total}}
		u.report(result.Progress)
		logger.Info("bulk upload completed in a single batch call")
		return result, nil
	}
	logger.Warn("single batch call failed, falling back to chunked upload", "error", err)

	result := &Result{Progress: Progress{Total: total}}
	for start := 0; start < total; start += u.chunkSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		end := min(start+u.chunkSize, total)
		chunk := records[start:end]

		if uniformCommunity(chunk) {
			if err := u.gateway.BatchByCommunity(ctx, chunk[0].CommunityID, chunk); err != nil {
				logger.Warn("grouped chunk call failed, retrying rows individually",
					"chunk_start", start, "error", err)
				u.uploadRows(ctx, doc, records, start, end, result)
			} else {
				result.Succeeded += len(chunk)
			}
		} else {
			u.uploadRows(ctx, doc, records, start, end, result)
		}

		result.Failed = len(result.Failures)
		u.report(result.Progress)
	}

	logger.Info("bulk upload finished",
		"succeeded", result.Succeeded, "failed", result.Failed)
	return result, nil
}

// uploadRows pushes rows [start, end) one at a time, recording failures
// without aborting sibling rows.
func (u *Uploader) uploadRows(ctx context.Context, doc *Document, records []listings.ApartmentUpload, start, end int, result *Result) {
	for i := start; i < end; i++ {
		if _, err := u.gateway.Create(ctx, records[i]); err != nil {
			result.Failures = append(result.Failures, RowFailure{
				Index:   i,
				Row:     doc.Rows[i],
				Message: errorMessage(err),
			})
		} else {
			result.Succeeded++
		}
	}
}

func (u *Uploader) report(p Progress) {
	if u.onProgress != nil {
		u.onProgress(p)
	}
}

// uniformCommunity reports whether every record in the chunk targets the
// same community, comparing the loosely-typed ids exactly as normalized.
func uniformCommunity(chunk []listings.ApartmentUpload) bool {
	for _, r := range chunk[1:] {
		if r.CommunityID != chunk[0].CommunityID {
			return false
		}
	}
	return true
}

// errorMessage prefers the backend-supplied message over the full wrapped
// error text, matching what an operator needs in the failure table.
func errorMessage(err error) string {
	var ae *listings.APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
