// Package relevance selects the transactions that touch tracked wallet entities.
package relevance

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result splits the transactions handed to a pass.
type Result struct {
	// Known were already marked relevant by the cache and were not looked up.
	Known []*model.Transaction
	// Matched were found relevant by this pass and carry their matched outputs and inputs.
	Matched []*model.Transaction
	// Irrelevant were looked up by this pass without a match.
	Irrelevant []*model.Transaction
}

// Relevant returns Known followed by Matched.
func (r Result) Relevant() []*model.Transaction {
	res := make([]*model.Transaction, 0, len(r.Known)+len(r.Matched))
	res = append(res, r.Known...)
	return append(res, r.Matched...)
}

// Filter runs relevance passes against the store. It only reads the cache; callers
// record verdicts once a pass is complete.
type Filter struct {
	store  Store
	cache  Cache
	cfg    Config
	logger *zap.Logger
}

// NewFilter constructs a Filter.
func NewFilter(store Store, cache Cache, logger *zap.Logger, cfg Config) *Filter {
	return &Filter{
		store:  store,
		cache:  cache,
		cfg:    cfg.withDefaults(),
		logger: logger.Named("relevance"),
	}
}

// ByOutputs matches transactions paying to a tracked address.
func (f *Filter) ByOutputs(ctx context.Context, txs []*model.Transaction) (Result, error) {
	known, pending := f.partition(txs)
	matched, err := f.matchOutputs(ctx, pending)
	if err != nil {
		return Result{}, err
	}
	return buildResult(known, pending, matched), nil
}

// ByInputs matches transactions spending a tracked output.
func (f *Filter) ByInputs(ctx context.Context, txs []*model.Transaction) (Result, error) {
	known, pending := f.partition(txs)
	matched, err := f.matchInputs(ctx, pending)
	if err != nil {
		return Result{}, err
	}
	return buildResult(known, pending, matched), nil
}

// Relevant runs both passes in parallel and then matches inputs spending outputs matched
// within txs itself, which the store cannot know about yet.
func (f *Filter) Relevant(ctx context.Context, txs []*model.Transaction) (Result, error) {
	known, pending := f.partition(txs)

	var byOutputs, byInputs []*model.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byOutputs, err = f.matchOutputs(gctx, pending)
		return err
	})
	g.Go(func() (err error) {
		byInputs, err = f.matchInputs(gctx, pending)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	matched := append(byOutputs, byInputs...)
	matched = append(matched, matchLocalSpends(pending, matched)...)
	res := buildResult(known, pending, matched)

	f.logger.Debug("relevance filtered",
		zap.Int("transactions", len(txs)),
		zap.Int("known", len(res.Known)),
		zap.Int("matched", len(res.Matched)))
	return res, nil
}

// Merge combines a ByOutputs and a ByInputs result taken over the same txs into what
// Relevant would have returned.
func Merge(txs []*model.Transaction, byOutputs, byInputs Result) Result {
	cached := make(map[*model.Transaction]struct{}, len(byOutputs.Known)+len(byInputs.Known))
	for _, tx := range byOutputs.Known {
		cached[tx] = struct{}{}
	}
	for _, tx := range byInputs.Known {
		cached[tx] = struct{}{}
	}

	var known, pending []*model.Transaction
	for _, tx := range txs {
		if _, ok := cached[tx]; ok {
			known = append(known, tx)
			continue
		}
		pending = append(pending, tx)
	}

	matched := make([]*model.Transaction, 0, len(byOutputs.Matched)+len(byInputs.Matched))
	matched = append(matched, byOutputs.Matched...)
	matched = append(matched, byInputs.Matched...)
	matched = append(matched, matchLocalSpends(pending, matched)...)
	return buildResult(known, pending, matched)
}

func (f *Filter) partition(txs []*model.Transaction) (known, pending []*model.Transaction) {
	for _, tx := range txs {
		if relevant, ok := f.cache.Get(tx.TxID); ok {
			if relevant {
				known = append(known, tx)
			}
			continue
		}
		pending = append(pending, tx)
	}
	return known, pending
}

type outputRef struct {
	tx    *model.Transaction
	index uint32
}

func (f *Filter) matchOutputs(ctx context.Context, txs []*model.Transaction) ([]*model.Transaction, error) {
	chunks := workerpool.Chunks(txs, f.cfg.TxChunkSize)
	results, err := workerpool.Map(ctx, f.cfg.Concurrency, chunks, func(ctx context.Context, chunk []*model.Transaction) ([]*model.Transaction, error) {
		refs := make(map[string][]outputRef)
		addresses := make([]string, 0, len(chunk))
		for _, tx := range chunk {
			for _, out := range tx.Outputs {
				addr, ok := out.Match.Address()
				if !ok {
					continue
				}
				if _, seen := refs[addr]; !seen {
					addresses = append(addresses, addr)
				}
				refs[addr] = append(refs[addr], outputRef{tx: tx, index: out.Index})
			}
		}
		if len(addresses) == 0 {
			return nil, nil
		}

		tracked, err := f.store.GetUngroupedHDAccountsByAddresses(ctx, addresses)
		if err != nil {
			return nil, fmt.Errorf("lookup tracked addresses: %w", err)
		}

		var matched []*model.Transaction
		for _, addr := range tracked {
			for _, ref := range refs[addr.Address] {
				ref.tx.MatchOutput(ref.index, addr)
				matched = append(matched, ref.tx)
			}
		}
		return matched, nil
	})
	if err != nil {
		return nil, err
	}
	return flatten(results), nil
}

type inputRef struct {
	tx    *model.Transaction
	index uint32
}

func (f *Filter) matchInputs(ctx context.Context, txs []*model.Transaction) ([]*model.Transaction, error) {
	refs := make(map[model.Outpoint][]inputRef)
	var outpoints []model.Outpoint
	for _, tx := range txs {
		for _, in := range tx.Inputs {
			if in.Coinbase {
				continue
			}
			if _, seen := refs[in.PrevOut]; !seen {
				outpoints = append(outpoints, in.PrevOut)
			}
			refs[in.PrevOut] = append(refs[in.PrevOut], inputRef{tx: tx, index: in.Index})
		}
	}

	chunks := workerpool.Chunks(outpoints, f.cfg.OutpointChunkSize)
	results, err := workerpool.Map(ctx, f.cfg.Concurrency, chunks, func(ctx context.Context, chunk []model.Outpoint) ([]*model.Transaction, error) {
		spent, err := f.store.GetOutputSpends(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("lookup output spends: %w", err)
		}
		var matched []*model.Transaction
		for _, out := range spent {
			for _, ref := range refs[out.Outpoint] {
				ref.tx.MatchInput(ref.index, out)
				matched = append(matched, ref.tx)
			}
		}
		return matched, nil
	})
	if err != nil {
		return nil, err
	}
	return flatten(results), nil
}

// matchLocalSpends tags inputs of txs that spend an output matched in the same set.
func matchLocalSpends(txs, matched []*model.Transaction) []*model.Transaction {
	funded := make(map[model.Outpoint]model.TrackedOutput)
	for _, tx := range matched {
		for index, addr := range tx.MatchedOutputs() {
			op := model.Outpoint{TxID: tx.TxID, Index: index}
			funded[op] = model.TrackedOutput{Outpoint: op, Address: addr.Address}
		}
	}
	if len(funded) == 0 {
		return nil
	}

	var res []*model.Transaction
	for _, tx := range txs {
		for _, in := range tx.Inputs {
			if in.Coinbase {
				continue
			}
			if out, ok := funded[in.PrevOut]; ok {
				tx.MatchInput(in.Index, out)
				res = append(res, tx)
			}
		}
	}
	return res
}

// buildResult keeps pending order and drops duplicate matches.
func buildResult(known, pending, matched []*model.Transaction) Result {
	hit := make(map[*model.Transaction]struct{}, len(matched))
	for _, tx := range matched {
		hit[tx] = struct{}{}
	}

	res := Result{Known: known}
	for _, tx := range pending {
		if _, ok := hit[tx]; ok {
			res.Matched = append(res.Matched, tx)
		} else {
			res.Irrelevant = append(res.Irrelevant, tx)
		}
	}
	return res
}

func flatten(chunks [][]*model.Transaction) []*model.Transaction {
	var res []*model.Transaction
	for _, chunk := range chunks {
		res = append(res, chunk...)
	}
	return res
}
