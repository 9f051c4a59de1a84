package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput wraps every field-level validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// Direction moves an ordered row one step.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down".
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	}
	return "", fmt.Errorf("%w: direction must be up or down", ErrInvalidInput)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

// cleanList trims entries and drops blanks. The result is never nil.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func findByID[T any](gdb *gorm.DB, id uint, label string) (*T, error) {
	var row T
	if err := gdb.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %d: %w", label, id, ErrNotFound)
		}
		return nil, fmt.Errorf("find %s: %w", label, err)
	}
	return &row, nil
}

func listAll[T any](gdb *gorm.DB, orderBy, label string) ([]T, error) {
	var rows []T
	if err := gdb.Order(orderBy).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", label, err)
	}
	return rows, nil
}

// deleteByID removes the row and hands it back so callers can clean up
// anything it referenced.
func deleteByID[T any](gdb *gorm.DB, id uint, label string) (*T, error) {
	row, err := findByID[T](gdb, id, label)
	if err != nil {
		return nil, err
	}
	result := gdb.Delete(new(T), id)
	if result.Error != nil {
		return nil, fmt.Errorf("delete %s: %w", label, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%s %d: %w", label, id, ErrNotFound)
	}
	return row, nil
}

// firstOrNil returns the singleton row, or nil when none has been saved yet.
func firstOrNil[T any](gdb *gorm.DB, label string) (*T, error) {
	var row T
	if err := gdb.Order("id ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", label, err)
	}
	return &row, nil
}

// upsertSingleton updates the first existing row, or inserts one when the
// table is empty. A second row is never created.
func upsertSingleton[T any](gdb *gorm.DB, label string, apply func(*T)) (*T, error) {
	var row T
	err := gdb.Order("id ASC").First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		apply(&row)
		if err := gdb.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("create %s: %w", label, err)
		}
	case err != nil:
		return nil, fmt.Errorf("find %s: %w", label, err)
	default:
		apply(&row)
		if err := gdb.Save(&row).Error; err != nil {
			return nil, fmt.Errorf("update %s: %w", label, err)
		}
	}
	return &row, nil
}

// nextOrder returns max(sort_order)+1, or 1 for an empty table.
func nextOrder(gdb *gorm.DB, model any) (int, error) {
	var maxOrder int
	if err := gdb.Model(model).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
		return 0, fmt.Errorf("resolve next order: %w", err)
	}
	return maxOrder + 1, nil
}

// moveOrdered swaps the row with its neighbour and renumbers the whole table
// 1..n. Moving the first row up or the last row down changes nothing.
func moveOrdered[T any](gdb *gorm.DB, id uint, dir Direction, label string) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(new(T)).Order("sort_order ASC, id ASC").Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("load %s order: %w", label, err)
		}

		index := -1
		for i, candidate := range ids {
			if candidate == id {
				index = i
				break
			}
		}
		if index < 0 {
			return fmt.Errorf("%s %d: %w", label, id, ErrNotFound)
		}

		target := index - 1
		if dir == Down {
			target = index + 1
		}
		if target < 0 || target >= len(ids) {
			return nil
		}

		ids[index], ids[target] = ids[target], ids[index]
		return renumber[T](tx, ids, label)
	})
}

// reorderAll assigns 1..n to ids in the given sequence. Rows not listed
// keep their relative order after the listed ones.
func reorderAll[T any](gdb *gorm.DB, ids []uint, label string) error {
	if len(ids) == 0 {
		return nil
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		var existing []uint
		if err := tx.Model(new(T)).Order("sort_order ASC, id ASC").Pluck("id", &existing).Error; err != nil {
			return fmt.Errorf("load %s order: %w", label, err)
		}

		known := make(map[uint]bool, len(existing))
		for _, id := range existing {
			known[id] = true
		}

		seen := make(map[uint]bool, len(ids))
		sequence := make([]uint, 0, len(existing))
		for _, id := range ids {
			if !known[id] {
				return fmt.Errorf("%s %d: %w", label, id, ErrNotFound)
			}
			if seen[id] {
				return invalid("duplicate id %d", id)
			}
			seen[id] = true
			sequence = append(sequence, id)
		}
		for _, id := range existing {
			if !seen[id] {
				sequence = append(sequence, id)
			}
		}

		return renumber[T](tx, sequence, label)
	})
}

func renumber[T any](tx *gorm.DB, ids []uint, label string) error {
	for index, id := range ids {
		if err := tx.Model(new(T)).Where("id = ?", id).Update("sort_order", index+1).Error; err != nil {
			return fmt.Errorf("reorder %s: %w", label, err)
		}
	}
	return nil
}
