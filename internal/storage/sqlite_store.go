package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS items (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  heat_category TEXT NOT NULL,
  heat_shu_max INTEGER NOT NULL,
  difficulty TEXT NOT NULL,
  container_friendly INTEGER NOT NULL DEFAULT 0,
  days_to_maturity_min INTEGER NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  record_json TEXT NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}

	// Databases created before catalog order was stored lack position.
	ok, err := s.hasColumn("items", "position")
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.db.Exec(`ALTER TABLE items ADD COLUMN position INTEGER NOT NULL DEFAULT 0;`); err != nil {
			return err
		}
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_items_heat ON items(heat_category);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_items_type ON items(type);`); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) CountItems() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) hasColumn(table, column string) (bool, error) {
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// ReplaceAll makes the table hold exactly items, in the given order.
// Items are validated first; on any error the table is left untouched.
func (s *SQLiteStore) ReplaceAll(items []domain.Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO items
(id, name, type, heat_category, heat_shu_max, difficulty, container_friendly, days_to_maturity_min, position, record_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for pos, it := range items {
		rec, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("marshal item %d: %w", it.ID, err)
		}
		if _, err := stmt.Exec(
			it.ID, it.Name, string(it.Type), string(it.HeatCategory), it.HeatSHUMax,
			string(it.Difficulty), it.ContainerFriendly, it.DaysToMaturityMin, pos, string(rec),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetItem(id int) (domain.Item, error) {
	var rec string
	err := s.db.QueryRow(`SELECT record_json FROM items WHERE id = ?`, id).Scan(&rec)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Item{}, err
	}
	return decodeItem(rec)
}

// AllItems returns the whole catalog in the order it was seeded.
func (s *SQLiteStore) AllItems() ([]domain.Item, error) {
	rows, err := s.db.Query(`SELECT record_json FROM items ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// ItemFilter narrows a catalog listing. Zero values mean no filter.
type ItemFilter struct {
	Heat          domain.HeatCategory
	Type          domain.PepperType
	ContainerOnly bool
	// Sort is one of heat_asc, heat_desc, name, maturity; anything else sorts by id.
	Sort string
}

func (s *SQLiteStore) ListItemsFiltered(limit, offset int, f ItemFilter) ([]domain.Item, int, error) {
	limit, offset = pageBounds(limit, offset)

	where := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if f.Heat.IsSet() {
		where = append(where, "heat_category = ?")
		args = append(args, string(f.Heat))
	}
	if f.Type.IsSet() {
		where = append(where, "type = ?")
		args = append(args, string(f.Type))
	}
	if f.ContainerOnly {
		where = append(where, "container_friendly = 1")
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	orderSQL := "ORDER BY id"
	switch f.Sort {
	case "heat_asc":
		orderSQL = "ORDER BY heat_shu_max ASC, id"
	case "heat_desc":
		orderSQL = "ORDER BY heat_shu_max DESC, id"
	case "name":
		orderSQL = "ORDER BY name COLLATE NOCASE, id"
	case "maturity":
		orderSQL = "ORDER BY days_to_maturity_min ASC, id"
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM items "+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rowsSQL := "SELECT record_json FROM items\n" + whereSQL + "\n" + orderSQL + "\nLIMIT ? OFFSET ?"
	rowsArgs := append(append([]any{}, args...), limit, offset)

	rows, err := s.db.Query(rowsSQL, rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	out, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	defer rows.Close()

	out := []domain.Item{}
	for rows.Next() {
		var rec string
		if err := rows.Scan(&rec); err != nil {
			return nil, err
		}
		it, err := decodeItem(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func decodeItem(rec string) (domain.Item, error) {
	var it domain.Item
	if err := json.Unmarshal([]byte(rec), &it); err != nil {
		return domain.Item{}, fmt.Errorf("decode item record: %w", err)
	}
	return it, nil
}
