package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a FOR UPDATE row lock on engines that support it.
// SQLite serializes writers anyway, so the clause is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	switch tx.Dialector.Name() {
	case "sqlite", "sqlite3":
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
