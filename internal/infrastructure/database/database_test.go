package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "sales.db?_foreign_keys=1", sqliteDSN("sales.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=1", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "a.db?_foreign_keys=0", sqliteDSN("a.db?_foreign_keys=0"))
}

func TestAutoMigrateSQLite(t *testing.T) {
	db, err := NewSQLiteDB("file:"+t.Name()+"?mode=memory&cache=shared", false)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"customers", "opportunities", "offers", "offer_items", "orders", "order_items", "payments", "idempotency_keys"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
