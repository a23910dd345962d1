package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/validation"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate item id")
)

// LoadItemsFromFile reads the variety catalog from a JSON or YAML file
// (chosen by extension) and validates every record.
func LoadItemsFromFile(path string) ([]domain.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []domain.Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &items)
	default:
		err = json.Unmarshal(b, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	if err := ValidateItems(items); err != nil {
		return nil, err
	}
	return items, nil
}

// ValidateItems checks each record and rejects repeated ids.
func ValidateItems(items []domain.Item) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if err := validation.ValidateItem(it); err != nil {
			return err
		}
		if _, ok := seen[it.ID]; ok {
			return fmt.Errorf("item %d (%s): %w", it.ID, it.Name, ErrDuplicateID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
