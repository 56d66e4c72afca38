package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/safe"
)

// Addresses without an hd row are imported loose addresses and come back with NULL hd
// columns.
const getUngroupedHDAccountsByAddressesQuery = `
SELECT a.addr_id, a.addr_address, h.hd_id, h.hd_xpub, ha.hd_addr_chain, ha.hd_addr_index
FROM addresses a
LEFT JOIN hd_addresses ha ON ha.addr_id = a.addr_id
LEFT JOIN hd h ON h.hd_id = ha.hd_id
WHERE a.addr_address = ANY($1)`

// GetUngroupedHDAccountsByAddresses returns the tracked subset of addresses.
func (r *Repository) GetUngroupedHDAccountsByAddresses(ctx context.Context, addresses []string) (res []model.TrackedAddress, err error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_ungrouped_hd_accounts_by_addresses", err, start)
	}()

	rows, err := r.db.Query(ctx, getUngroupedHDAccountsByAddressesQuery, addresses)
	if err != nil {
		return nil, fmt.Errorf("query tracked addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			addr         model.TrackedAddress
			xpub         *string
			chain, index *int32
		)
		if err = rows.Scan(&addr.AddressID, &addr.Address, &addr.HDAccountID, &xpub, &chain, &index); err != nil {
			return nil, fmt.Errorf("scan tracked address: %w", err)
		}
		if xpub != nil {
			addr.XPub = *xpub
		}
		if chain != nil {
			if addr.Chain, err = safe.Uint32(*chain); err != nil {
				return nil, fmt.Errorf("address %s chain: %w", addr.Address, err)
			}
		}
		if index != nil {
			if addr.ChildIndex, err = safe.Uint32(*index); err != nil {
				return nil, fmt.Errorf("address %s child index: %w", addr.Address, err)
			}
		}
		res = append(res, addr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracked addresses: %w", err)
	}
	return res, nil
}
