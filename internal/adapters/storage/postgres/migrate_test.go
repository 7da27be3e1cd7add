package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedScripts_AreGooseAnnotated(t *testing.T) {
	for _, dir := range []string{migrationsDir, seedDir} {
		files, err := fs.Glob(scripts, dir+"/*.sql")
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, name := range files {
			body, err := fs.ReadFile(scripts, name)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), name)
		}
	}
}

func TestSchemaMigration_HasDown(t *testing.T) {
	body, err := fs.ReadFile(scripts, migrationsDir+"/00001_schema.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Down")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS owners")
}

func TestSeed_IsIdempotent(t *testing.T) {
	body, err := fs.ReadFile(scripts, seedDir+"/00001_data.sql")
	require.NoError(t, err)
	for _, stmt := range strings.Split(string(body), ";") {
		if strings.Contains(stmt, "INSERT INTO") {
			assert.Contains(t, stmt, "ON CONFLICT", stmt)
		}
	}
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, likeEscaper.Replace(`50%_off\`))
	assert.Equal(t, "Davis", likeEscaper.Replace("Davis"))
}
