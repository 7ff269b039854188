package repository

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// orderedItems preloads line items in their stored order
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// newestFirst orders records by creation time, newest first
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// nextSequence returns one past the highest numeric suffix of column values
// starting with prefix, or 1 when none exist. Values whose suffix is not
// all digits, such as caller-supplied legacy numbers, are ignored.
func nextSequence(ctx context.Context, db *gorm.DB, model interface{}, column, prefix string) (int, error) {
	var numbers []string
	err := db.WithContext(ctx).Model(model).
		Where(column+" LIKE ?", prefix+"%").
		Pluck(column, &numbers).Error
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, number := range numbers {
		suffix := strings.TrimPrefix(number, prefix)
		if !isDigits(suffix) {
			continue
		}
		seq, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return highest + 1, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
