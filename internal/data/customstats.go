package data

import (
	"StatLabApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"
	"time"
)

var ErrDuplicateFormulaName = errors.New("duplicate formula name")

// CustomStat is a saved named formula. Once stored it is read-only to the
// calculation engine; names are unique so resolution is unambiguous.
type CustomStat struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Formula     string    `json:"formula"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
	Version     int32     `json:"-"`
}

type CustomStatModel struct {
	db *sql.DB
}

func (m *CustomStatModel) Insert(stat *CustomStat) error {
	stmt := `
		INSERT INTO custom_stats (name, formula, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`

	args := []any{stat.Name, stat.Formula, stat.Description}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, args...).Scan(&stat.ID, &stat.CreatedAt,
		&stat.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint `+
			`"unq_custom_stat_name"`:
			return ErrDuplicateFormulaName
		default:
			return err
		}
	}

	return nil
}

// GetAll returns the full registry ordered by creation so resolution order is
// deterministic across calls.
func (m *CustomStatModel) GetAll() ([]*CustomStat, error) {
	stmt := `
		SELECT id, created_at, version, name, formula, description
			FROM custom_stats
			ORDER BY id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*CustomStat, 0)
	for rows.Next() {
		var stat CustomStat
		err := rows.Scan(
			&stat.ID,
			&stat.CreatedAt,
			&stat.Version,
			&stat.Name,
			&stat.Formula,
			&stat.Description,
		)
		if err != nil {
			return nil, err
		}
		stats = append(stats, &stat)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (m *CustomStatModel) Delete(id int64) error {
	stmt := `
		DELETE FROM custom_stats
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.db.ExecContext(ctx, stmt, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ValidateCustomStat enforces the creation-time policy that a saved formula name
// can never collide with a reserved stat token, so name resolution and token
// substitution stay unambiguous.
func ValidateCustomStat(v *validator.Validator, stat *CustomStat, reservedTokens []string) {
	v.Check(stat.Name != "", "name", "must be provided")
	v.Check(len(stat.Name) <= 40, "name", "must be 40 characters or less")

	upper := strings.ToUpper(stat.Name)
	v.Check(!slices.Contains(reservedTokens, upper), "name",
		"must not match a reserved stat token")

	v.Check(stat.Formula != "", "formula", "must be provided")
	v.Check(len(stat.Formula) <= 500, "formula", "must be 500 characters or less")

	v.Check(len(stat.Description) <= 200, "description", "must be 200 characters or less")
}
