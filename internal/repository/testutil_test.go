package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skybook/internal/database"
	"skybook/internal/domain"
)

// testDB opens a named in-memory sqlite database (shared cache so every
// pooled connection sees the same data) and applies the schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	airline     domain.Airline
	nycTerminal domain.Terminal
	tyoTerminal domain.Terminal
	cgkTerminal domain.Terminal
}

// seedGeo inserts one airline plus airports/terminals in New York
// (America), Tokyo (Asia) and Jakarta (Asia).
func seedGeo(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	airline := domain.Airline{Name: "Garuda Indonesia", Code: "GA"}
	require.NoError(t, db.Create(&airline).Error)

	nyc := domain.Airport{Name: "John F Kennedy", Continent: "America", Country: "USA", City: "NYC"}
	tyo := domain.Airport{Name: "Haneda", Continent: "Asia", Country: "Japan", City: "Tokyo"}
	cgk := domain.Airport{Name: "Soekarno-Hatta", Continent: "Asia", Country: "Indonesia", City: "Jakarta"}
	require.NoError(t, db.Create(&nyc).Error)
	require.NoError(t, db.Create(&tyo).Error)
	require.NoError(t, db.Create(&cgk).Error)

	t1 := domain.Terminal{Name: "Terminal 1", AirportID: nyc.ID}
	t2 := domain.Terminal{Name: "International", AirportID: tyo.ID}
	t3 := domain.Terminal{Name: "Terminal 3", AirportID: cgk.ID}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)
	require.NoError(t, db.Create(&t3).Error)

	return fixture{airline: airline, nycTerminal: t1, tyoTerminal: t2, cgkTerminal: t3}
}
