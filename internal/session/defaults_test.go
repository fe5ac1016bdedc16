package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var horaPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

func TestFormDefaults_InMemory(t *testing.T) {
	f := NewFormDefaults(nil)
	ctx := context.Background()

	t.Run("first read suggests the display clock", func(t *testing.T) {
		hora := f.Hora(ctx, "Claudia")
		assert.Regexp(t, horaPattern, hora)
	})

	t.Run("remember wins over the clock", func(t *testing.T) {
		f.Remember(ctx, "Claudia", "14:30")
		assert.Equal(t, "14:30", f.Hora(ctx, "Claudia"))
	})

	t.Run("defaults are per login", func(t *testing.T) {
		f.Remember(ctx, "Evandro", "09:00")
		assert.Equal(t, "14:30", f.Hora(ctx, "Claudia"))
		assert.Equal(t, "09:00", f.Hora(ctx, "Evandro"))
	})

	t.Run("clear resets to the clock", func(t *testing.T) {
		f.Clear(ctx, "Claudia")
		assert.Regexp(t, horaPattern, f.Hora(ctx, "Claudia"))
	})
}

func TestFormDefaults_Redis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	f := NewFormDefaults(rdb)
	ctx := context.Background()

	t.Run("remember writes with ttl", func(t *testing.T) {
		mock.ExpectSet("formdefault:hora:Claudia", "14:30", 24*time.Hour).SetVal("OK")
		f.Remember(ctx, "Claudia", "14:30")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hora reads the remembered value", func(t *testing.T) {
		mock.ExpectGet("formdefault:hora:Claudia").SetVal("14:30")
		assert.Equal(t, "14:30", f.Hora(ctx, "Claudia"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss falls back to the clock", func(t *testing.T) {
		mock.ExpectGet("formdefault:hora:Renan").RedisNil()
		assert.Regexp(t, horaPattern, f.Hora(ctx, "Renan"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear deletes the key", func(t *testing.T) {
		mock.ExpectDel("formdefault:hora:Claudia").SetVal(1)
		f.Clear(ctx, "Claudia")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
