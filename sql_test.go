package microstring_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/rawbytedev/microstring"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE quotes (code TEXT NOT NULL, venue TEXT NOT NULL, desk TEXT)`)
	require.NoError(t, err)
	return db
}

func TestSQLRoundTrip(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	code := microstring.MustNanoString("GBP")
	venue := microstring.MustMicroString("LSE")
	desk := microstring.SomeMilliString(microstring.MustMilliString("fx-spot"))
	_, err := db.ExecContext(ctx, `INSERT INTO quotes (code, venue, desk) VALUES (?, ?, ?)`, code, venue, desk)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO quotes (code, venue, desk) VALUES (?, ?, ?)`,
		microstring.MustNanoString("EUR"), venue, microstring.OptionalMilliString{})
	require.NoError(t, err)

	var (
		gotCode  microstring.NanoString
		gotVenue microstring.MicroString
		gotDesk  microstring.OptionalMilliString
	)
	row := db.QueryRowContext(ctx, `SELECT code, venue, desk FROM quotes WHERE code = ?`, code)
	require.NoError(t, row.Scan(&gotCode, &gotVenue, &gotDesk))
	require.Equal(t, code, gotCode)
	require.Equal(t, venue, gotVenue)
	require.Equal(t, desk, gotDesk)

	row = db.QueryRowContext(ctx, `SELECT desk FROM quotes WHERE code = 'EUR'`)
	require.NoError(t, row.Scan(&gotDesk))
	require.False(t, gotDesk.IsPresent())

	var nulls int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM quotes WHERE desk IS NULL`).Scan(&nulls))
	require.Equal(t, 1, nulls)
}

func TestSQLScanRejects(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO quotes (code, venue, desk) VALUES ('DOLLAR', 'LSE', NULL)`)
	require.NoError(t, err)

	var code microstring.NanoString
	err = db.QueryRowContext(ctx, `SELECT code FROM quotes`).Scan(&code)
	require.ErrorContains(t, err, "at most 3 bytes")
	require.ErrorIs(t, err, microstring.ErrNanoStringTooLong)

	var desk microstring.MilliString
	err = db.QueryRowContext(ctx, `SELECT desk FROM quotes`).Scan(&desk)
	require.ErrorIs(t, err, microstring.ErrNotString)
}
