package db

import "gorm.io/gorm"

// StatusNotIn filters out rows whose status column is one of statuses.
func StatusNotIn(column string, statuses ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(statuses) == 0 {
			return db
		}
		return db.Where(column+" NOT IN ?", statuses)
	}
}

// Limit caps a query at n rows; n <= 0 leaves it unbounded.
func Limit(n int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}
