// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package dashboard

import "fmt"

// Queries holds the four fixed SQL statements.
type Queries struct {
	Stacked     string
	Leaderboard string
	Heatmap     string
	Map         string
}

// BuildQueries renders the panel statements for the given table names and
// row limit. Table names must already be validated identifiers.
func BuildQueries(ordersTable, usersTable string, limit int) Queries {
	return Queries{
		Stacked: fmt.Sprintf(`SELECT DOG_MENU, COOK_LV, SUM(QUANTITY) AS total_quantity
FROM %s
GROUP BY DOG_MENU, COOK_LV
ORDER BY total_quantity DESC
LIMIT %d`, ordersTable, limit),

		// USERID breaks ties so equal counts rank deterministically.
		Leaderboard: fmt.Sprintf(`SELECT USERID, COUNT(ORDERID) AS total_orders
FROM %s
GROUP BY USERID
ORDER BY total_orders DESC, USERID ASC
LIMIT %d`, ordersTable, limit),

		Heatmap: fmt.Sprintf(`SELECT DOG_BREED, DRINKS_MENU, COUNT(*) AS pair_count
FROM %s
GROUP BY DOG_BREED, DRINKS_MENU
ORDER BY pair_count DESC
LIMIT %d`, ordersTable, limit),

		Map: fmt.Sprintf(`SELECT regionid, COUNT(*) AS total_count
FROM %s
GROUP BY regionid
ORDER BY total_count DESC`, usersTable),
	}
}
