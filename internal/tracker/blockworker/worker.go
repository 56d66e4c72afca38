// Package blockworker runs block processing on a dedicated goroutine driven by
// messages, one step per message.
package blockworker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/block"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
	"go.uber.org/zap"
)

// Op is a step of the worker.
type Op string

const (
	OpInit    Op = "INIT"
	OpOutputs Op = "OUTPUTS"
	OpInputs  Op = "INPUTS"
	OpConfirm Op = "CONFIRM"
	OpReset   Op = "RESET"
)

// ErrInvalidTransition is returned for a step sent out of order.
var ErrInvalidTransition = errors.New("invalid block worker transition")

// allowed lists the states each op may follow. RESET is accepted everywhere.
var allowed = map[Op][]Op{
	OpInit:    {OpReset, OpConfirm},
	OpOutputs: {OpInit},
	OpInputs:  {OpOutputs},
	OpConfirm: {OpInputs},
}

type message struct {
	ctx   context.Context
	op    Op
	block *model.Block
	reply chan reply
}

type reply struct {
	outcome block.Outcome
	err     error
}

// Worker processes blocks step by step on the goroutine running Run. It satisfies the
// same Process contract as block.Processor.
type Worker struct {
	filter    Filter
	committer Committer
	logger    *zap.Logger
	msgs      chan message

	// serializes Process callers; a block's steps must not interleave with another's.
	mu sync.Mutex
	// set when a failed block could not be reset; the next Process resets first.
	dirty bool

	// owned by Run
	state   Op
	block   *model.Block
	outputs relevance.Result
	inputs  relevance.Result
}

// New constructs a Worker. Run must be started before Process is called.
func New(filter Filter, committer Committer, logger *zap.Logger) *Worker {
	return &Worker{
		filter:    filter,
		committer: committer,
		logger:    logger.Named("blockworker"),
		msgs:      make(chan message),
		state:     OpReset,
	}
}

// Run handles messages until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-w.msgs:
			outcome, err := w.handle(msg)
			msg.reply <- reply{outcome: outcome, err: err}
		}
	}
}

// Process sends the steps of one block and returns the outcome of CONFIRM. A failed
// step resets the worker.
func (w *Worker) Process(ctx context.Context, b *model.Block) (block.Outcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dirty {
		if _, err := w.send(ctx, OpReset, nil); err != nil {
			return block.Outcome{}, err
		}
		w.dirty = false
	}

	var (
		outcome block.Outcome
		err     error
	)
	for _, op := range []Op{OpInit, OpOutputs, OpInputs, OpConfirm} {
		if outcome, err = w.send(ctx, op, b); err != nil {
			w.reset(ctx)
			return block.Outcome{}, err
		}
	}
	return outcome, nil
}

func (w *Worker) reset(ctx context.Context) {
	w.dirty = true
	if ctx.Err() != nil {
		return
	}
	if _, err := w.send(ctx, OpReset, nil); err != nil {
		w.logger.Warn("reset failed", zap.Error(err))
		return
	}
	w.dirty = false
}

func (w *Worker) send(ctx context.Context, op Op, b *model.Block) (block.Outcome, error) {
	msg := message{ctx: ctx, op: op, block: b, reply: make(chan reply, 1)}
	select {
	case <-ctx.Done():
		return block.Outcome{}, ctx.Err()
	case w.msgs <- msg:
	}
	select {
	case <-ctx.Done():
		return block.Outcome{}, ctx.Err()
	case r := <-msg.reply:
		return r.outcome, r.err
	}
}

func (w *Worker) handle(msg message) (block.Outcome, error) {
	if msg.op != OpReset && !w.canEnter(msg.op) {
		return block.Outcome{}, fmt.Errorf("%w: %s after %s", ErrInvalidTransition, msg.op, w.state)
	}

	var (
		outcome block.Outcome
		err     error
	)
	switch msg.op {
	case OpReset:
		w.block = nil
		w.outputs = relevance.Result{}
		w.inputs = relevance.Result{}
	case OpInit:
		if msg.block == nil {
			return block.Outcome{}, errors.New("init without block")
		}
		w.block = msg.block
	case OpOutputs:
		w.outputs, err = w.filter.ByOutputs(msg.ctx, w.block.Transactions)
	case OpInputs:
		w.inputs, err = w.filter.ByInputs(msg.ctx, w.block.Transactions)
	case OpConfirm:
		res := relevance.Merge(w.block.Transactions, w.outputs, w.inputs)
		outcome, err = w.committer.Commit(msg.ctx, w.block, res)
	default:
		return block.Outcome{}, fmt.Errorf("%w: unknown op %q", ErrInvalidTransition, msg.op)
	}
	if err != nil {
		return block.Outcome{}, fmt.Errorf("%s block %d: %w", msg.op, w.block.Header.Height, err)
	}
	w.state = msg.op
	return outcome, nil
}

func (w *Worker) canEnter(op Op) bool {
	for _, from := range allowed[op] {
		if from == w.state {
			return true
		}
	}
	return false
}
