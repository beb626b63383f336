package database

import "github.com/go-pg/pg/v10"

// Lobby statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in progress"
	StatusEnded      = "ended"
)

// GameRecord is the discoverable lobby entry for a game; the full
// GameState lives in the storage backend, keyed by the same id.
type GameRecord struct {
	Id     string
	Name   string
	Code   string
	Status string
}

func CreateGameRecord(db *pg.DB, rec *GameRecord) error {
	_, err := db.Model(rec).Insert()
	return err
}

func ListGameRecords(db *pg.DB, status string) ([]GameRecord, error) {
	var recs []GameRecord
	q := db.Model(&recs)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Select()
	return recs, err
}

func UpdateGameStatus(db *pg.DB, gameId, status string) error {
	rec := &GameRecord{Id: gameId}
	_, err := db.Model(rec).WherePK().Set("status = ?", status).Update()
	return err
}

func DeleteGameRecord(db *pg.DB, gameId string) error {
	rec := &GameRecord{Id: gameId}
	_, err := db.Model(rec).WherePK().Delete()
	return err
}
