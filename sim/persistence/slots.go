package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/hoopsim/hoopsim/sim"
)

// SlotMeta describes a stored save without its payload.
type SlotMeta struct {
	Slot       string    `db:"slot"`
	SeasonYear int       `db:"season_year"`
	CurrentDay int       `db:"current_day"`
	UserTeamID string    `db:"user_team_id"`
	SavedAt    time.Time `db:"saved_at"`
}

// SlotStore keeps sealed snapshots in a SQLite database, one row per slot.
type SlotStore struct {
	conn       *sqlx.DB
	passphrase string
	now        func() time.Time
}

// Open opens or creates the save database at path. An empty passphrase uses
// DefaultPassphrase.
func Open(path, passphrase string) (*SlotStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if passphrase == "" {
		passphrase = DefaultPassphrase
	}
	st := &SlotStore{conn: conn, passphrase: passphrase, now: time.Now}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (st *SlotStore) Close() error {
	return st.conn.Close()
}

func (st *SlotStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		slot TEXT PRIMARY KEY,
		season_year INTEGER NOT NULL,
		current_day INTEGER NOT NULL,
		user_team_id TEXT NOT NULL,
		saved_at DATETIME NOT NULL,
		blob BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_save_slots_saved_at ON save_slots(saved_at);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// Put writes a sealed blob under meta.Slot, replacing any earlier save.
func (st *SlotStore) Put(meta SlotMeta, blob []byte) error {
	if err := checkSlot(meta.Slot); err != nil {
		return err
	}
	tx, err := st.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM save_slots WHERE slot = ?", meta.Slot); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO save_slots
		(slot, season_year, current_day, user_team_id, saved_at, blob)
		VALUES (?, ?, ?, ?, ?, ?)`,
		meta.Slot, meta.SeasonYear, meta.CurrentDay, meta.UserTeamID, meta.SavedAt.UTC(), blob); err != nil {
		return err
	}
	return tx.Commit()
}

// Save seals s into slot.
func (st *SlotStore) Save(slot string, s *sim.LeagueState) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	blob, err := Seal(data, st.passphrase)
	if err != nil {
		return fmt.Errorf("sealing slot %s: %w", slot, err)
	}
	meta := SlotMeta{Slot: slot, SeasonYear: s.SeasonYear, CurrentDay: s.CurrentDay, UserTeamID: s.UserTeamID, SavedAt: st.now()}
	if err := st.Put(meta, blob); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	logrus.Debugf("saved slot %s (season %d, day %d)", slot, s.SeasonYear, s.CurrentDay)
	return nil
}

// Get returns the sealed blob of a slot, ErrNoSave when it is empty.
func (st *SlotStore) Get(slot string) ([]byte, error) {
	var blob []byte
	err := st.conn.Get(&blob, "SELECT blob FROM save_slots WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w %s", ErrNoSave, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return blob, nil
}

// Load reads, unseals and decodes a slot.
func (st *SlotStore) Load(slot string, cfg *sim.Config) (*sim.LeagueState, []string, error) {
	blob, err := st.Get(slot)
	if err != nil {
		return nil, nil, err
	}
	data, err := Unseal(blob, st.passphrase)
	if err != nil {
		return nil, nil, fmt.Errorf("slot %s: %w", slot, err)
	}
	return Decode(data, cfg)
}

// List returns every stored slot, most recently saved first.
func (st *SlotStore) List() ([]SlotMeta, error) {
	var slots []SlotMeta
	err := st.conn.Select(&slots,
		"SELECT slot, season_year, current_day, user_team_id, saved_at FROM save_slots ORDER BY saved_at DESC, slot",
	)
	return slots, err
}

// Delete removes a slot. Deleting an empty slot yields ErrNoSave.
func (st *SlotStore) Delete(slot string) error {
	res, err := st.conn.Exec("DELETE FROM save_slots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w %s", ErrNoSave, slot)
	}
	return nil
}
