package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of the btcd rpc client used by Node.
	RPCClient interface {
		GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
	}

	// RawTxBatcher sends getrawtransaction requests as one JSON-RPC batch. Results are
	// returned in request order.
	RawTxBatcher interface {
		GetRawTransactionsVerbose(hashes []*chainhash.Hash) ([]RawTxResult, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// RawTxResult is one entry of a batched getrawtransaction.
type RawTxResult struct {
	Tx  *btcjson.TxRawResult
	Err error
}
