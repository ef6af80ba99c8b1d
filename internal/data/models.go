package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrDuplicateSeason = errors.New("duplicate player season")

type Models struct {
	Players     PlayerModel
	CustomStats CustomStatModel
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Players:     PlayerModel{db: initDb},
		CustomStats: CustomStatModel{db: initDb},
	}
}
