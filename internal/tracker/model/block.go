package model

// BlockHeader is a header as observed from the node.
type BlockHeader struct {
	Height       uint64
	Hash         string
	Time         uint32
	PreviousHash string
}

// PersistedBlock is a block row of the store. ParentID is nil for the first stored block
// and for blocks whose parent was removed.
type PersistedBlock struct {
	ID       int64
	Height   uint64
	Hash     string
	Time     uint32
	ParentID *int64
}

// NewBlock carries the fields needed to insert a block row.
type NewBlock struct {
	Height   uint64
	Hash     string
	Time     uint32
	ParentID *int64
}

// HighestBlock is the tip of the store. ID is zero when the store holds no blocks.
type HighestBlock struct {
	Height uint64
	ID     int64
}

// Empty reports whether the store holds no blocks.
func (b HighestBlock) Empty() bool {
	return b.ID == 0
}

// ChainInfo is the node's view of its own progress.
type ChainInfo struct {
	Blocks  uint64
	Headers uint64
}

// Block is a decoded block body with its header.
type Block struct {
	Header       BlockHeader
	Transactions []*Transaction
}
