// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the orders and users tables with the column names the
// Pinot schema uses. Identifiers are validated by config before reaching here.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			ORDERID VARCHAR NOT NULL,
			USERID VARCHAR NOT NULL,
			DOG_MENU VARCHAR NOT NULL,
			COOK_LV VARCHAR NOT NULL,
			DOG_BREED VARCHAR NOT NULL,
			DRINKS_MENU VARCHAR NOT NULL,
			QUANTITY BIGINT NOT NULL,
			ORDER_TS TIMESTAMP DEFAULT current_timestamp
		)`, db.ordersTable),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			userid VARCHAR NOT NULL,
			regionid VARCHAR NOT NULL,
			gender VARCHAR,
			registertime BIGINT
		)`, db.usersTable),
	}

	for _, q := range queries {
		if _, err := db.conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
