package bitcoin

import (
	"errors"

	"github.com/btcsuite/btcd/btcjson"
)

// ErrTxNotFound is returned when the node knows nothing about a transaction.
var ErrTxNotFound = errors.New("transaction not found")

func isNoTxInfo(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCNoTxInfo
}
