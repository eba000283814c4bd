// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Tables for foods, exercise, sleep diary, goals, meal plan, pantry.
package storage

// initSchema creates or updates the database schema. Dates are stored as
// ISO yyyy-MM-dd TEXT; bedtime/wakeup/duration as "HH:mm" TEXT. The goals
// table is an append-only log where each row sets at most one field.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS foods (
		id TEXT PRIMARY KEY,
		food TEXT NOT NULL,
		calories INTEGER NOT NULL,
		entry_date TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS exercise (
		id TEXT PRIMARY KEY,
		activity TEXT NOT NULL,
		calories INTEGER NOT NULL,
		entry_date TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sleep_diary (
		id TEXT PRIMARY KEY,
		sleep_date TEXT NOT NULL,
		bedtime TEXT NOT NULL,
		wakeup TEXT NOT NULL,
		duration TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		current_weight REAL,
		target_weight REAL,
		daily_calorie_goal REAL,
		weight_loss_timeframe REAL,
		updated_date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meal_plan (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		Monday TEXT DEFAULT '',
		Tuesday TEXT DEFAULT '',
		Wednesday TEXT DEFAULT '',
		Thursday TEXT DEFAULT '',
		Friday TEXT DEFAULT '',
		Saturday TEXT DEFAULT '',
		Sunday TEXT DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS pantry (
		id TEXT PRIMARY KEY,
		item TEXT NOT NULL,
		weight INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shopping_list (
		id TEXT PRIMARY KEY,
		item TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_foods_date ON foods(entry_date);
	CREATE INDEX IF NOT EXISTS idx_exercise_date ON exercise(entry_date);
	CREATE INDEX IF NOT EXISTS idx_sleep_date ON sleep_diary(sleep_date);
	CREATE INDEX IF NOT EXISTS idx_goals_updated ON goals(updated_date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
