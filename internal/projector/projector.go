package projector

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/potlock/indexer/internal/domain"
	"github.com/potlock/indexer/internal/logger"
	"github.com/potlock/indexer/internal/pricing"
	"github.com/potlock/indexer/internal/store"
)

const (
	defaultWorkerCount = 10
	defaultQueueSize   = 256
)

// Config tunes the per-block projection fan-out and names the contract
// accounts that anchor method dispatch.
type Config struct {
	DonateAccountID string
	WorkerCount     int
	QueueSize       int
}

// Projector turns filtered block actions into entity writes. Each action is
// projected independently; writes are idempotent so redelivered blocks are
// safe to replay.
type Projector struct {
	store      store.Store
	valuation  *pricing.Valuation
	classifier *domain.AccountClassifier
	cfg        Config
}

func New(s store.Store, v *pricing.Valuation, classifier *domain.AccountClassifier, cfg Config) *Projector {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return &Projector{
		store:      s,
		valuation:  v,
		classifier: classifier,
		cfg:        cfg,
	}
}

// ProcessBlock projects every successful in-domain action of the block. Decode
// failures, missing target entities and unavailable prices are logged and
// skipped; storage failures fail the whole block so the host can redeliver it.
//
// Each event commits in its own transaction, so a concurrent reader can
// observe a partially applied block until redelivery converges it. Within one
// event the detail row and its aggregates always commit together.
func (p *Projector) ProcessBlock(ctx context.Context, block *domain.Block) error {
	actions := FilterSuccessfulActions(block, p.classifier)
	if len(actions) == 0 {
		return nil
	}

	blockTime := block.Time()

	pool := pond.NewPool(p.cfg.WorkerCount, pond.WithQueueSize(p.cfg.QueueSize), pond.WithContext(ctx))
	var mu sync.Mutex
	var fatal []error

	for _, action := range actions {
		action := action
		pool.Submit(func() {
			if err := p.projectAction(ctx, block, blockTime, action); err != nil {
				if isRecoverable(err) {
					logger.WarnCtx(ctx, "skipping action",
						zap.String("receiptId", action.ReceiptID),
						zap.String("receiverId", action.ReceiverID),
						zap.Error(err))
					return
				}
				mu.Lock()
				fatal = append(fatal, err)
				mu.Unlock()
			}
		})
	}
	pool.StopAndWait()

	// A cancelled context makes the pool drop queued actions without running
	// them; the block is incomplete and must not be acked.
	if err := ctx.Err(); err != nil {
		fatal = append(fatal, err)
	}

	if len(fatal) > 0 {
		return errors.Join(fatal...)
	}
	return nil
}

func (p *Projector) projectAction(ctx context.Context, block *domain.Block, blockTime time.Time, action domain.Action) error {
	for i := range action.Operations {
		call := action.Operations[i].FunctionCall
		if call == nil {
			continue
		}
		if err := p.dispatch(ctx, block, blockTime, action, call); err != nil {
			return err
		}
	}
	return nil
}

// isRecoverable reports whether an error affects only the single action that
// produced it. Anything else is treated as a storage or infrastructure
// failure that must fail the block.
func isRecoverable(err error) bool {
	var decodeErr *domain.DecodeError
	if errors.As(err, &decodeErr) {
		return true
	}
	return errors.Is(err, domain.ErrEntityNotFound) || errors.Is(err, domain.ErrPriceUnavailable)
}
