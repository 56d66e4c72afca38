package model

// BlockEvent is the payload of the outbound block topic.
type BlockEvent struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash"`
}
