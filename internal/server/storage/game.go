package storage

import (
	"database/sql"
	"fmt"
)

// RecordNewGame queues a games row.
func (s *Store) RecordNewGame(record GameRecord) {
	s.enqueue("game record", func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO games (
			game_id, x_player_id, o_player_id, opponent_type, start_time_utc
		) VALUES (?, ?, ?, ?, ?)`,
			record.GameID, record.XPlayerID, nullString(record.OPlayerID),
			record.OpponentType, record.StartTimeUTC,
		)
		return err
	})
}

// RecordSeat queues the O seat owner of an existing game.
func (s *Store) RecordSeat(gameID, oPlayerID string) {
	s.enqueue("seat record", func(tx *sql.Tx) error {
		_, err := tx.Exec(`UPDATE games SET o_player_id = ? WHERE game_id = ?`, oPlayerID, gameID)
		return err
	})
}

// RecordMove queues a moves row.
func (s *Store) RecordMove(record MoveRecord) {
	s.enqueue("move record", func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO moves (
			game_id, move_number, notation, player, captured, computer, move_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			record.GameID, record.MoveNumber, record.Notation, record.Player,
			record.Captured, record.Computer, record.MoveTimeUTC,
		)
		return err
	})
}

// RecordResult queues the results row of a finished game.
func (s *Store) RecordResult(record ResultRecord) {
	s.enqueue("result record", func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT OR REPLACE INTO results (
			game_id, state, winner, move_count, end_time_utc
		) VALUES (?, ?, ?, ?, ?)`,
			record.GameID, record.State, record.Winner, record.MoveCount, record.EndTimeUTC,
		)
		return err
	})
}

// QueryGames lists games, newest first. An empty or "*" filter matches all.
// playerID matches either seat.
func (s *Store) QueryGames(gameID, playerID string) ([]GameRecord, error) {
	query := `SELECT
		g.game_id, g.x_player_id, g.o_player_id, g.opponent_type, g.start_time_utc,
		r.state, r.winner, r.move_count, r.end_time_utc
	FROM games g LEFT JOIN results r ON r.game_id = g.game_id
	WHERE 1=1`

	var args []any

	if gameID != "" && gameID != "*" {
		query += " AND g.game_id = ?"
		args = append(args, gameID)
	}

	if playerID != "" && playerID != "*" {
		query += " AND (g.x_player_id = ? OR g.o_player_id = ?)"
		args = append(args, playerID, playerID)
	}

	query += " ORDER BY g.start_time_utc DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var (
			g         GameRecord
			oPlayer   sql.NullString
			state     sql.NullString
			winner    sql.NullString
			moveCount sql.NullInt64
			endTime   sql.NullTime
		)
		err := rows.Scan(
			&g.GameID, &g.XPlayerID, &oPlayer, &g.OpponentType, &g.StartTimeUTC,
			&state, &winner, &moveCount, &endTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		g.OPlayerID = oPlayer.String
		if state.Valid {
			g.Result = &ResultRecord{
				GameID:     g.GameID,
				State:      state.String,
				Winner:     winner.String,
				MoveCount:  int(moveCount.Int64),
				EndTimeUTC: endTime.Time,
			}
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return games, nil
}

// QueryMoves lists the moves of one game in play order.
func (s *Store) QueryMoves(gameID string) ([]MoveRecord, error) {
	rows, err := s.db.Query(`SELECT
		move_id, game_id, move_number, notation, player, captured, computer, move_time_utc
	FROM moves WHERE game_id = ? ORDER BY move_number`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(
			&m.MoveID, &m.GameID, &m.MoveNumber, &m.Notation, &m.Player,
			&m.Captured, &m.Computer, &m.MoveTimeUTC,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return moves, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
