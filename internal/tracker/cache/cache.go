// Package cache remembers relevance verdicts of transactions already evaluated.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize   = 100_000
	DefaultMaxAge = 7 * 24 * time.Hour
)

// Dedup maps a txid to whether the transaction is relevant. Entries are evicted
// least-recently-used once the size is reached and expire after maxAge whether or not
// they are read.
type Dedup struct {
	lru *expirable.LRU[string, bool]
}

// NewDedup creates a Dedup. Non-positive arguments select the defaults.
func NewDedup(size int, maxAge time.Duration) *Dedup {
	if size <= 0 {
		size = DefaultSize
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Dedup{lru: expirable.NewLRU[string, bool](size, nil, maxAge)}
}

// Has reports whether a verdict is cached for txid.
func (d *Dedup) Has(txid string) bool {
	_, ok := d.lru.Peek(txid)
	return ok
}

// Get returns the cached verdict for txid and whether there is one.
func (d *Dedup) Get(txid string) (relevant, ok bool) {
	return d.lru.Get(txid)
}

// Set records the verdict for txid.
func (d *Dedup) Set(txid string, relevant bool) {
	d.lru.Add(txid, relevant)
}

// Delete drops the verdict for txid.
func (d *Dedup) Delete(txid string) {
	d.lru.Remove(txid)
}

// Len returns the number of cached verdicts.
func (d *Dedup) Len() int {
	return d.lru.Len()
}
