package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// collectTxIDs reads a single text column and closes rows.
func collectTxIDs(rows pgx.Rows) ([]string, error) {
	defer rows.Close()

	var res []string
	for rows.Next() {
		var txid string
		if err := rows.Scan(&txid); err != nil {
			return nil, fmt.Errorf("scan txid: %w", err)
		}
		res = append(res, txid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate txids: %w", err)
	}
	return res, nil
}
