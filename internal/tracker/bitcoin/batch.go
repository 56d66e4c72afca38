package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

// rpcBatcher opens a batch client per call. Batching requires HTTP POST mode.
type rpcBatcher struct {
	cfg *rpcclient.ConnConfig
}

// NewRawTxBatcher returns a RawTxBatcher talking to the node described by cfg.
func NewRawTxBatcher(cfg *rpcclient.ConnConfig) RawTxBatcher {
	return &rpcBatcher{cfg: cfg}
}

func (b *rpcBatcher) GetRawTransactionsVerbose(hashes []*chainhash.Hash) ([]RawTxResult, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	client, err := rpcclient.NewBatch(b.cfg)
	if err != nil {
		return nil, fmt.Errorf("create batch client: %w", err)
	}
	defer client.Shutdown()

	futures := make([]rpcclient.FutureGetRawTransactionVerboseResult, len(hashes))
	for i, hash := range hashes {
		futures[i] = client.GetRawTransactionVerboseAsync(hash)
	}
	if err := client.Send(); err != nil {
		return nil, fmt.Errorf("send batch: %w", err)
	}

	results := make([]RawTxResult, len(hashes))
	for i, future := range futures {
		tx, err := future.Receive()
		if err != nil && isNoTxInfo(err) {
			err = fmt.Errorf("%w: %s", ErrTxNotFound, hashes[i])
		}
		results[i] = RawTxResult{Tx: tx, Err: err}
	}
	return results, nil
}
