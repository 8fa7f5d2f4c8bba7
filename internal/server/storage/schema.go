package storage

import "time"

// GameRecord is a row of games joined with its result, if any.
type GameRecord struct {
	GameID       string    `db:"game_id"`
	XPlayerID    string    `db:"x_player_id"`
	OPlayerID    string    `db:"o_player_id"` // empty until the O seat is claimed
	OpponentType int       `db:"opponent_type"`
	StartTimeUTC time.Time `db:"start_time_utc"`

	Result *ResultRecord `db:"-"`
}

// MoveRecord is a row of moves. Computer replies are recorded as their own
// row.
type MoveRecord struct {
	MoveID      int64     `db:"move_id"`
	GameID      string    `db:"game_id"`
	MoveNumber  int       `db:"move_number"`
	Notation    string    `db:"notation"`
	Player      string    `db:"player"`
	Captured    int       `db:"captured"`
	Computer    bool      `db:"computer"`
	MoveTimeUTC time.Time `db:"move_time_utc"`
}

// ResultRecord is a row of results, written once per finished game.
type ResultRecord struct {
	GameID     string    `db:"game_id"`
	State      string    `db:"state"`
	Winner     string    `db:"winner"`
	MoveCount  int       `db:"move_count"`
	EndTimeUTC time.Time `db:"end_time_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	x_player_id TEXT NOT NULL,
	o_player_id TEXT,
	opponent_type INTEGER NOT NULL CHECK(opponent_type IN (1, 2)),
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS moves (
	move_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	move_number INTEGER NOT NULL,
	notation TEXT NOT NULL,
	player TEXT NOT NULL CHECK(player IN ('X', 'O')),
	captured INTEGER NOT NULL DEFAULT 0,
	computer INTEGER NOT NULL DEFAULT 0,
	move_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, move_number)
);

CREATE TABLE IF NOT EXISTS results (
	game_id TEXT PRIMARY KEY,
	state TEXT NOT NULL,
	winner TEXT NOT NULL,
	move_count INTEGER NOT NULL,
	end_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
CREATE INDEX IF NOT EXISTS idx_games_x_player ON games(x_player_id);
CREATE INDEX IF NOT EXISTS idx_games_o_player ON games(o_player_id);
`
