package confirm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrConfirmationTimeout error = errors.New("confirmation wait timed out")

type State int

const (
	StateSubmitted State = iota
	StatePending
	StateFinalized
	StateFailed
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	case StatePending:
		return "pending"
	case StateFinalized:
		return "finalized"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Status is the tracker's view of a submitted transaction.
type Status struct {
	State         State
	Confirmations uint64
	TargetDepth   uint64
}

const (
	// DefaultDepth is the number of blocks mined on top of the submission
	// block before a transaction is treated as final.
	DefaultDepth = 5
	// DefaultInterval approximates the expected block time.
	DefaultInterval = 12 * time.Second
)

// Tracker polls chain height after a submission until the configured
// confirmation depth is reached. It only reads; cancelling a wait leaves
// the underlying transaction untouched.
type Tracker struct {
	logs     *zap.SugaredLogger
	client   HeightClient
	depth    uint64
	interval time.Duration
	timeout  time.Duration
}

// NewTracker creates a tracker with the given policy. Zero depth or
// interval fall back to the defaults; a zero timeout disables the bound.
func NewTracker(logger *zap.SugaredLogger, client HeightClient, depth uint64, interval, timeout time.Duration) *Tracker {
	if depth == 0 {
		depth = DefaultDepth
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		logs:     logger,
		client:   client,
		depth:    depth,
		interval: interval,
		timeout:  timeout,
	}
}

// Await blocks until the transaction included at submissionBlock has
// reached the target confirmation depth, the timeout elapses, or ctx is
// cancelled. It never reports finalized before observed height minus the
// submission block is at least the target depth, and never regresses once
// finalized.
func (t *Tracker) Await(ctx context.Context, submissionBlock uint64) (Status, error) {
	status := Status{
		State:       StateSubmitted,
		TargetDepth: t.depth,
	}

	var deadline <-chan time.Time
	if t.timeout > 0 {
		timer := time.NewTimer(t.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		height, err := t.client.BlockNumber(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return status, ctx.Err()
			}
			t.logs.Errorw("failed to read chain height", "error", err, "submission_block", submissionBlock)
		} else {
			status.State = StatePending
			if height >= submissionBlock {
				status.Confirmations = height - submissionBlock
			}

			t.logs.Infow("confirmation progress",
				"height", height,
				"submission_block", submissionBlock,
				"confirmations", status.Confirmations,
				"target_depth", t.depth)

			if status.Confirmations >= t.depth {
				status.State = StateFinalized
				return status, nil
			}
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-deadline:
			status.State = StateTimedOut
			return status, ErrConfirmationTimeout
		case <-time.After(t.interval):
		}
	}
}
