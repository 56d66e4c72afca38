package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

// Decoder turns wire transactions into model transactions, resolving output scripts
// against the parameters of one network.
type Decoder struct {
	params *chaincfg.Params
}

// NewDecoder initializes a decoder for the provided network.
func NewDecoder(network model.Network) (*Decoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &Decoder{params: params}, nil
}

// DecodeTransaction parses a serialized transaction.
func (d *Decoder) DecodeTransaction(raw []byte) (*model.Transaction, error) {
	var msg wire.MsgTx
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	tx, err := d.convert(&msg)
	if err != nil {
		return nil, err
	}
	tx.Raw = append([]byte(nil), raw...)
	return tx, nil
}

// DecodeBlock converts every transaction of a block body.
func (d *Decoder) DecodeBlock(header model.BlockHeader, msg *wire.MsgBlock) (*model.Block, error) {
	txs := make([]*model.Transaction, 0, len(msg.Transactions))
	for _, msgTx := range msg.Transactions {
		tx, err := d.convert(msgTx)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", header.Hash, err)
		}
		var buf bytes.Buffer
		buf.Grow(msgTx.SerializeSize())
		if err := msgTx.Serialize(&buf); err != nil {
			return nil, fmt.Errorf("serialize tx %s: %w", tx.TxID, err)
		}
		tx.Raw = buf.Bytes()
		tx.Topic = model.TopicBlock
		txs = append(txs, tx)
	}
	return &model.Block{Header: header, Transactions: txs}, nil
}

func (d *Decoder) convert(msg *wire.MsgTx) (*model.Transaction, error) {
	txid := msg.TxHash().String()
	coinbase := isCoinbase(msg)

	inputs := make([]model.Input, 0, len(msg.TxIn))
	for i, in := range msg.TxIn {
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, fmt.Errorf("tx %s input index overflow: %w", txid, err)
		}
		inputs = append(inputs, model.Input{
			Index: index,
			PrevOut: model.Outpoint{
				TxID:  in.PreviousOutPoint.Hash.String(),
				Index: in.PreviousOutPoint.Index,
			},
			Sequence: in.Sequence,
			Coinbase: coinbase,
		})
	}

	outputs := make([]model.Output, 0, len(msg.TxOut))
	for i, out := range msg.TxOut {
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", txid, err)
		}
		outputs = append(outputs, model.Output{
			Index:  index,
			Value:  out.Value,
			Script: out.PkScript,
			Match:  d.scriptMatch(out.PkScript),
		})
	}

	return &model.Transaction{
		TxID:    txid,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// scriptMatch resolves scripts paying to exactly one address. Bare multisig, OP_RETURN
// and non-standard scripts are Undecoded.
func (d *Decoder) scriptMatch(pkScript []byte) model.ScriptMatch {
	if len(pkScript) == 0 {
		return model.Undecoded()
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, d.params)
	if err != nil || len(addrs) != 1 {
		return model.Undecoded()
	}
	return model.AddressMatch(addrs[0].EncodeAddress())
}

func isCoinbase(msg *wire.MsgTx) bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prev := msg.TxIn[0].PreviousOutPoint
	return prev.Index == wire.MaxPrevOutIndex && prev.Hash == chainhash.Hash{}
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	parsed, err := model.ParseNetwork(string(network))
	if err != nil {
		return nil, err
	}
	switch parsed {
	case model.Mainnet:
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	case model.Regtest:
		return &chaincfg.RegressionNetParams, nil
	case model.Signet:
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("no chain params for network %q", parsed)
	}
}
