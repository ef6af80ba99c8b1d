package data

import (
	"StatLabApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// SeasonRecord holds one player's statistics for one season and team stint.
// Numeric fields are never null in storage, so a zero value always means "no
// production", which is what formula evaluation expects.
type SeasonRecord struct {
	Season               string  `json:"season"`
	Team                 string  `json:"team"`
	Points               float64 `json:"points"`
	Assists              float64 `json:"assists"`
	Rebounds             float64 `json:"rebounds"`
	Steals               float64 `json:"steals"`
	Blocks               float64 `json:"blocks"`
	Turnovers            float64 `json:"turnovers"`
	FieldGoalPercentage  float64 `json:"field_goal_percentage"`
	FieldGoalAttempts    float64 `json:"field_goal_attempts"`
	ThreePointPercentage float64 `json:"three_point_percentage"`
	ThreePointAttempts   float64 `json:"three_point_attempts"`
	FreeThrowPercentage  float64 `json:"free_throw_percentage"`
	FreeThrowAttempts    float64 `json:"free_throw_attempts"`
	PlusMinus            float64 `json:"plus_minus"`
	MinutesPerGame       float64 `json:"minutes_per_game"`
	GamesPlayed          int     `json:"games_played"`
	WinPercentage        float64 `json:"win_percentage"`
}

// Player owns zero or more per-season records plus a current aggregate record.
// A player with no season rows is defined solely by the aggregate, which scope
// iteration treats as a single pseudo-season labeled CurrentSeason.
type Player struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Team          string         `json:"team"`
	Position      string         `json:"position"`
	CurrentSeason string         `json:"current_season"`
	Current       SeasonRecord   `json:"current"`
	Seasons       []SeasonRecord `json:"seasons,omitempty"`
	CreatedAt     time.Time      `json:"-"`
	Version       int32          `json:"-"`
}

// HasSeasonHistory reports which variant of the player record this is: per-season
// history present, or aggregate-only.
func (p *Player) HasSeasonHistory() bool {
	return len(p.Seasons) > 0
}

type PlayerModel struct {
	db *sql.DB
}

func (m *PlayerModel) Insert(player *Player) error {
	stmt := `
		INSERT INTO players (name, team, position, current_season, points, assists, rebounds,
			steals, blocks, turnovers, fg_pct, fga, three_pct, three_pa, ft_pct, fta,
			plus_minus, minutes_per_game, games_played, win_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20)
		RETURNING id, created_at, version`

	args := []any{
		player.Name,
		player.Team,
		player.Position,
		player.CurrentSeason,
		player.Current.Points,
		player.Current.Assists,
		player.Current.Rebounds,
		player.Current.Steals,
		player.Current.Blocks,
		player.Current.Turnovers,
		player.Current.FieldGoalPercentage,
		player.Current.FieldGoalAttempts,
		player.Current.ThreePointPercentage,
		player.Current.ThreePointAttempts,
		player.Current.FreeThrowPercentage,
		player.Current.FreeThrowAttempts,
		player.Current.PlusMinus,
		player.Current.MinutesPerGame,
		player.Current.GamesPlayed,
		player.Current.WinPercentage,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(&player.ID, &player.CreatedAt,
		&player.Version)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	if len(player.Seasons) != 0 {
		err = insertSeasons(player, tx, ctx)
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return rollbackErr
			}
			return err
		}
	}

	return tx.Commit()
}

func insertSeasons(player *Player, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		INSERT INTO player_seasons (player_id, season, team, points, assists, rebounds, steals,
			blocks, turnovers, fg_pct, fga, three_pct, three_pa, ft_pct, fta, plus_minus,
			minutes_per_game, games_played, win_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19)`

	for _, s := range player.Seasons {
		args := []any{
			player.ID,
			s.Season,
			s.Team,
			s.Points,
			s.Assists,
			s.Rebounds,
			s.Steals,
			s.Blocks,
			s.Turnovers,
			s.FieldGoalPercentage,
			s.FieldGoalAttempts,
			s.ThreePointPercentage,
			s.ThreePointAttempts,
			s.FreeThrowPercentage,
			s.FreeThrowAttempts,
			s.PlusMinus,
			s.MinutesPerGame,
			s.GamesPlayed,
			s.WinPercentage,
		}

		_, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			switch {
			case err.Error() == `pq: duplicate key value violates unique constraint `+
				`"unq_player_season_team"`:
				return ErrDuplicateSeason
			default:
				return err
			}
		}
	}

	return nil
}

func (m *PlayerModel) Get(id int64) (*Player, error) {
	stmt := `
		SELECT id, created_at, version, name, team, position, current_season, points, assists,
			rebounds, steals, blocks, turnovers, fg_pct, fga, three_pct, three_pa, ft_pct,
			fta, plus_minus, minutes_per_game, games_played, win_pct
			FROM players
			WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var player Player
	err := m.db.QueryRowContext(ctx, stmt, id).Scan(
		&player.ID,
		&player.CreatedAt,
		&player.Version,
		&player.Name,
		&player.Team,
		&player.Position,
		&player.CurrentSeason,
		&player.Current.Points,
		&player.Current.Assists,
		&player.Current.Rebounds,
		&player.Current.Steals,
		&player.Current.Blocks,
		&player.Current.Turnovers,
		&player.Current.FieldGoalPercentage,
		&player.Current.FieldGoalAttempts,
		&player.Current.ThreePointPercentage,
		&player.Current.ThreePointAttempts,
		&player.Current.FreeThrowPercentage,
		&player.Current.FreeThrowAttempts,
		&player.Current.PlusMinus,
		&player.Current.MinutesPerGame,
		&player.Current.GamesPlayed,
		&player.Current.WinPercentage,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	err = m.attachSeasons(ctx, []*Player{&player})
	if err != nil {
		return nil, err
	}

	return &player, nil
}

// GetAll returns one page of players matching the name/team/position filters.
// Season records are attached to every returned player.
func (m *PlayerModel) GetAll(name string, team string, position string, filters Filters) (
	[]*Player, Metadata, error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), id, created_at, version, name, team, position, current_season,
			points, assists, rebounds, steals, blocks, turnovers, fg_pct, fga, three_pct,
			three_pa, ft_pct, fta, plus_minus, minutes_per_game, games_played, win_pct
			FROM players
			WHERE (to_tsvector('simple', name) @@ plainto_tsquery('simple', $1) OR $1 = '')
			AND (team = $2 OR $2 = '')
			AND (position = $3 OR $3 = '')
			ORDER BY %s %s, id ASC
			LIMIT $4 OFFSET $5`, filters.sortColumn(), filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, name, team, position, filters.limit(),
		filters.offset())
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	players := make([]*Player, 0)

	for rows.Next() {
		var player Player
		err := rows.Scan(
			&totalRecords,
			&player.ID,
			&player.CreatedAt,
			&player.Version,
			&player.Name,
			&player.Team,
			&player.Position,
			&player.CurrentSeason,
			&player.Current.Points,
			&player.Current.Assists,
			&player.Current.Rebounds,
			&player.Current.Steals,
			&player.Current.Blocks,
			&player.Current.Turnovers,
			&player.Current.FieldGoalPercentage,
			&player.Current.FieldGoalAttempts,
			&player.Current.ThreePointPercentage,
			&player.Current.ThreePointAttempts,
			&player.Current.FreeThrowPercentage,
			&player.Current.FreeThrowAttempts,
			&player.Current.PlusMinus,
			&player.Current.MinutesPerGame,
			&player.Current.GamesPlayed,
			&player.Current.WinPercentage,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		players = append(players, &player)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	err = m.attachSeasons(ctx, players)
	if err != nil {
		return nil, Metadata{}, err
	}

	metadata := calculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return players, metadata, nil
}

// Snapshot loads every player with full season history in one shot. Calculations
// operate on the returned slice only, so concurrent requests never share state.
func (m *PlayerModel) Snapshot() ([]*Player, error) {
	stmt := `
		SELECT id, created_at, version, name, team, position, current_season, points, assists,
			rebounds, steals, blocks, turnovers, fg_pct, fga, three_pct, three_pa, ft_pct,
			fta, plus_minus, minutes_per_game, games_played, win_pct
			FROM players
			ORDER BY id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*Player, 0)
	for rows.Next() {
		var player Player
		err := rows.Scan(
			&player.ID,
			&player.CreatedAt,
			&player.Version,
			&player.Name,
			&player.Team,
			&player.Position,
			&player.CurrentSeason,
			&player.Current.Points,
			&player.Current.Assists,
			&player.Current.Rebounds,
			&player.Current.Steals,
			&player.Current.Blocks,
			&player.Current.Turnovers,
			&player.Current.FieldGoalPercentage,
			&player.Current.FieldGoalAttempts,
			&player.Current.ThreePointPercentage,
			&player.Current.ThreePointAttempts,
			&player.Current.FreeThrowPercentage,
			&player.Current.FreeThrowAttempts,
			&player.Current.PlusMinus,
			&player.Current.MinutesPerGame,
			&player.Current.GamesPlayed,
			&player.Current.WinPercentage,
		)
		if err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	err = m.attachSeasons(ctx, players)
	if err != nil {
		return nil, err
	}

	return players, nil
}

func (m *PlayerModel) attachSeasons(ctx context.Context, players []*Player) error {
	if len(players) == 0 {
		return nil
	}

	byID := make(map[int64]*Player, len(players))
	ids := make([]int64, 0, len(players))
	for _, p := range players {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	stmt := `
		SELECT player_id, season, team, points, assists, rebounds, steals, blocks, turnovers,
			fg_pct, fga, three_pct, three_pa, ft_pct, fta, plus_minus, minutes_per_game,
			games_played, win_pct
			FROM player_seasons
			WHERE player_id = ANY($1)
			ORDER BY player_id ASC, season ASC, team ASC`

	rows, err := m.db.QueryContext(ctx, stmt, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var playerID int64
		var s SeasonRecord
		err := rows.Scan(
			&playerID,
			&s.Season,
			&s.Team,
			&s.Points,
			&s.Assists,
			&s.Rebounds,
			&s.Steals,
			&s.Blocks,
			&s.Turnovers,
			&s.FieldGoalPercentage,
			&s.FieldGoalAttempts,
			&s.ThreePointPercentage,
			&s.ThreePointAttempts,
			&s.FreeThrowPercentage,
			&s.FreeThrowAttempts,
			&s.PlusMinus,
			&s.MinutesPerGame,
			&s.GamesPlayed,
			&s.WinPercentage,
		)
		if err != nil {
			return err
		}

		player, ok := byID[playerID]
		if !ok {
			continue
		}
		player.Seasons = append(player.Seasons, s)
	}

	return rows.Err()
}

func ValidatePlayer(v *validator.Validator, player *Player) {
	v.Check(player.Name != "", "name", "must be provided")
	v.Check(len(player.Name) <= 60, "name", "must be 60 characters or less")

	v.Check(player.Team != "", "team", "must be provided")
	v.Check(player.CurrentSeason != "", "current_season", "must be provided")

	v.Check(player.Current.GamesPlayed >= 0, "games_played", "must be 0 or greater")

	seasons := make([]string, 0, len(player.Seasons))
	for _, s := range player.Seasons {
		v.Check(s.Season != "", "seasons", "every season must carry a label")
		v.Check(s.GamesPlayed >= 0, "seasons", "games played must be 0 or greater")
		seasons = append(seasons, s.Season+"/"+s.Team)
	}
	v.Check(validator.Unique(seasons), "seasons", "must not repeat a season and team stint")
}
