// Package bitcoin talks to the bitcoin node and decodes what it returns.
package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

// Node exposes the node RPC surface used by the tracker, with every call observed.
type Node struct {
	rpc     RPCClient
	batcher RawTxBatcher
	decoder *Decoder
	metrics RPCMetrics
}

// NewNode constructs a Node.
func NewNode(rpc RPCClient, batcher RawTxBatcher, decoder *Decoder, metrics RPCMetrics) *Node {
	return &Node{
		rpc:     rpc,
		batcher: batcher,
		decoder: decoder,
		metrics: metrics,
	}
}

// ChainInfo returns the node's block and header counts.
func (n *Node) ChainInfo(ctx context.Context) (info model.ChainInfo, err error) {
	if err := ctx.Err(); err != nil {
		return model.ChainInfo{}, err
	}
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_blockchain_info", err, started)
	}()

	res, err := n.rpc.GetBlockChainInfo()
	if err != nil {
		return model.ChainInfo{}, fmt.Errorf("get blockchain info: %w", err)
	}
	blocks, err := safe.Uint64(res.Blocks)
	if err != nil {
		return model.ChainInfo{}, fmt.Errorf("blocks overflow: %w", err)
	}
	headers, err := safe.Uint64(res.Headers)
	if err != nil {
		return model.ChainInfo{}, fmt.Errorf("headers overflow: %w", err)
	}
	return model.ChainInfo{Blocks: blocks, Headers: headers}, nil
}

// BlockHash returns the hash of the main chain block at height.
func (n *Node) BlockHash(ctx context.Context, height uint64) (hash string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h, err := safe.Int64(height)
	if err != nil {
		return "", fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block_hash", err, started)
	}()

	res, err := n.rpc.GetBlockHash(h)
	if err != nil {
		return "", fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return res.String(), nil
}

// BlockHeader returns the header of the block with the given hash.
func (n *Node) BlockHeader(ctx context.Context, hash string) (header model.BlockHeader, err error) {
	if err := ctx.Err(); err != nil {
		return model.BlockHeader{}, err
	}
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block_header", err, started)
	}()

	res, err := n.rpc.GetBlockHeaderVerbose(blockHash)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	height, err := safe.Uint64(res.Height)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("block %s height overflow: %w", hash, err)
	}
	blockTime, err := safe.Uint32(res.Time)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("block %s time overflow: %w", hash, err)
	}
	return model.BlockHeader{
		Height:       height,
		Hash:         res.Hash,
		Time:         blockTime,
		PreviousHash: res.PreviousHash,
	}, nil
}

// HeaderAt returns the header of the main chain block at height.
func (n *Node) HeaderAt(ctx context.Context, height uint64) (model.BlockHeader, error) {
	hash, err := n.BlockHash(ctx, height)
	if err != nil {
		return model.BlockHeader{}, err
	}
	return n.BlockHeader(ctx, hash)
}

func (n *Node) rawBlock(ctx context.Context, hash string) (msg *wire.MsgBlock, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_block", err, started)
	}()

	msg, err = n.rpc.GetBlock(blockHash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return msg, nil
}

// TransactionStatuses looks up txids in one batch. A transaction the node does not know
// is reported with Found false; any other per-transaction failure fails the call.
func (n *Node) TransactionStatuses(ctx context.Context, txids []string) (statuses []model.TxStatus, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hashes := make([]*chainhash.Hash, 0, len(txids))
	for _, txid := range txids {
		hash, err := chainhash.NewHashFromStr(txid)
		if err != nil {
			return nil, fmt.Errorf("parse txid %q: %w", txid, err)
		}
		hashes = append(hashes, hash)
	}
	started := time.Now()
	defer func() {
		n.metrics.Observe("get_raw_transaction_batch", err, started)
	}()

	results, err := n.batcher.GetRawTransactionsVerbose(hashes)
	if err != nil {
		return nil, fmt.Errorf("get raw transactions: %w", err)
	}
	if len(results) != len(txids) {
		return nil, fmt.Errorf("get raw transactions: got %d results for %d txids", len(results), len(txids))
	}

	statuses = make([]model.TxStatus, 0, len(txids))
	for i, res := range results {
		switch {
		case errors.Is(res.Err, ErrTxNotFound):
			statuses = append(statuses, model.TxStatus{TxID: txids[i]})
		case res.Err != nil:
			return nil, fmt.Errorf("get raw transaction %s: %w", txids[i], res.Err)
		default:
			statuses = append(statuses, model.TxStatus{
				TxID:      txids[i],
				Found:     true,
				BlockHash: res.Tx.BlockHash,
			})
		}
	}
	return statuses, nil
}

// BlockAt fetches and decodes the main chain block at height. The header is taken from
// the block itself, so it costs two calls instead of three.
func (n *Node) BlockAt(ctx context.Context, height uint64) (*model.Block, error) {
	hash, err := n.BlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	msg, err := n.rawBlock(ctx, hash)
	if err != nil {
		return nil, err
	}
	blockTime, err := safe.Uint32(msg.Header.Timestamp.Unix())
	if err != nil {
		return nil, fmt.Errorf("block %s time overflow: %w", hash, err)
	}
	header := model.BlockHeader{
		Height:       height,
		Hash:         msg.BlockHash().String(),
		Time:         blockTime,
		PreviousHash: msg.Header.PrevBlock.String(),
	}
	if header.Hash != hash {
		return nil, fmt.Errorf("block at height %d: node returned %s for %s", height, header.Hash, hash)
	}
	return n.decoder.DecodeBlock(header, msg)
}
