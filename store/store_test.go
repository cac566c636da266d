package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/workout"
	"github.com/ayoisaiah/sculpt/store"
)

func sampleHistory(t *testing.T) *history.Store {
	t.Helper()

	h := history.New()

	older := workout.NewSession(time.Date(2025, 2, 3, 7, 15, 0, 0, time.UTC))
	older.Append(workout.Exercise{Name: "Bench Press", MuscleGroup: "Chest", Sets: 3, Reps: 5, Weight: 100})
	older.Append(workout.Exercise{Name: "Squat", MuscleGroup: "Legs", Sets: 5, Reps: 5, Weight: 140})

	newer := workout.NewSession(time.Date(2025, 2, 5, 19, 45, 30, 0, time.UTC))
	newer.Append(workout.Exercise{Name: "bench press", MuscleGroup: "Chest", Sets: 4, Reps: 10, Weight: 90})
	newer.Append(workout.Exercise{Name: "Farmer Walk", Sets: 2, Reps: 1, Weight: 32.5})

	h.Commit(older)
	h.Commit(newer)

	return h
}

func openDB(t *testing.T, driver string) store.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sculpt."+driver)

	db, err := store.Open(driver, path)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRoundTrip(t *testing.T) {
	for _, driver := range []string{store.DriverBolt, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			db := openDB(t, driver)
			want := sampleHistory(t)

			require.NoError(t, db.SaveSessions(want.Sessions()))

			got := history.Open(db)

			assert.Equal(t, want.TotalSessions(), got.TotalSessions())
			assert.InDelta(t, want.TotalVolumeAllTime(), got.TotalVolumeAllTime(), 1e-9)

			for _, name := range []string{"Bench Press", "Squat", "Farmer Walk", "Deadlift"} {
				assert.InDelta(t, want.PersonalRecord(name), got.PersonalRecord(name), 1e-9, name)
			}

			wantSessions, gotSessions := want.Sessions(), got.Sessions()
			require.Len(t, gotSessions, len(wantSessions))

			for i := range wantSessions {
				assert.Equal(t, wantSessions[i].ID, gotSessions[i].ID)
				assert.True(t, wantSessions[i].CreatedAt.Equal(gotSessions[i].CreatedAt))
				assert.Equal(t, wantSessions[i].Entries, gotSessions[i].Entries)
			}
		})
	}
}

func TestSaveReplacesHistory(t *testing.T) {
	for _, driver := range []string{store.DriverBolt, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			db := openDB(t, driver)

			h := history.New(history.WithSaver(db))

			for i := 0; i < 3; i++ {
				s := workout.NewSession(time.Now())
				s.Append(workout.Exercise{Name: "Deadlift", Sets: 1, Reps: i + 1, Weight: 150})
				h.Commit(s)
			}

			sessions, err := db.LoadSessions()
			require.NoError(t, err)
			require.Len(t, sessions, 3)

			for i, s := range h.Sessions() {
				assert.Equal(t, s.ID, sessions[i].ID)
			}

			assert.Equal(t, 3, sessions[0].Entries[0].Reps)
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, driver := range []string{store.DriverBolt, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			sessions, err := openDB(t, driver).LoadSessions()

			require.NoError(t, err)
			assert.Empty(t, sessions)
		})
	}
}

func TestReopen(t *testing.T) {
	for _, driver := range []string{store.DriverBolt, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sculpt."+driver)

			db, err := store.Open(driver, path)
			require.NoError(t, err)
			require.NoError(t, db.SaveSessions(sampleHistory(t).Sessions()))
			require.NoError(t, db.Close())

			db, err = store.Open(driver, path)
			require.NoError(t, err)

			defer db.Close()

			h := history.Open(db)
			assert.Equal(t, 2, h.TotalSessions())
			assert.InDelta(t, 120.0, h.PersonalRecord("Bench Press"), 1e-9)
		})
	}
}

func TestCorruptBoltRecordIsSkipped(t *testing.T) {
	db := openDB(t, store.DriverBolt)

	require.NoError(t, db.SaveSessions(sampleHistory(t).Sessions()))

	client, ok := db.(*store.BoltClient)
	require.True(t, ok)

	err := client.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("sessions")).Put([]byte{0, 0, 0, 0, 0, 0, 0, 9}, []byte("{"))
	})
	require.NoError(t, err)

	sessions, err := db.LoadSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	h := history.Open(db)
	assert.Equal(t, 2, h.TotalSessions())
	assert.InDelta(t, 120.0, h.PersonalRecord("Bench Press"), 1e-9)
}

func TestOpenNonDatabaseFile(t *testing.T) {
	for _, driver := range []string{store.DriverBolt, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sculpt."+driver)

			err := os.WriteFile(
				path,
				bytes.Repeat([]byte("this is not a database "), 512),
				0o600,
			)
			require.NoError(t, err)

			_, err = store.Open(driver, path)

			require.Error(t, err)
			assert.NotErrorIs(t, err, store.ErrSculptRunning)
		})
	}
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sculpt.db")

	db, err := store.Open(store.DriverBolt, path)
	require.NoError(t, err)

	defer db.Close()

	_, err = store.Open(store.DriverBolt, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrSculptRunning)
}

func TestUnknownDriver(t *testing.T) {
	_, err := store.Open("postgres", filepath.Join(t.TempDir(), "x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnknownDriver)
	assert.Contains(t, err.Error(), `"postgres"`)
}
