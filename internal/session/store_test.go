package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	store := NewStore(time.Hour)

	first := store.GetOrCreate(1)
	second := store.GetOrCreate(1)

	assert.Same(t, first, second)
	assert.Equal(t, StepMenu, first.Step)
	assert.Equal(t, 1, store.Len())
}

func TestClearResetsFieldsButKeepsSession(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.GetOrCreate(1)
	sess.Step = StepDNI
	sess.Flow = FlowLetterRequest
	sess.Nombre = "Juan Pérez"
	sess.EstudianteID = 42
	sess.RutaPDF = "/tmp/carta.pdf"

	store.Clear(1)

	require.Same(t, sess, store.GetOrCreate(1))
	assert.Equal(t, StepMenu, sess.Step)
	assert.Equal(t, FlowNone, sess.Flow)
	assert.Empty(t, sess.Nombre)
	assert.Zero(t, sess.EstudianteID)
	assert.Empty(t, sess.RutaPDF)
}

func TestDelete(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.GetOrCreate(1)
	sess.Nombre = "Juan Pérez"
	store.Delete(1)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.GetOrCreate(1).Nombre)
}

func TestEvictIdleRemovesOnlyStaleSessions(t *testing.T) {
	store := NewStore(10 * time.Minute)

	store.GetOrCreate(1)
	store.GetOrCreate(2)

	// neither session is stale yet
	assert.Equal(t, 0, store.EvictIdle(time.Now()))

	// chat 2 stays active, chat 1 goes idle
	time.Sleep(10 * time.Millisecond)
	store.GetOrCreate(2)

	evicted := store.EvictIdle(time.Now().Add(10*time.Minute + 5*time.Millisecond))
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Len())
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	store := NewStore(0)

	store.GetOrCreate(1)
	assert.Equal(t, 0, store.EvictIdle(time.Now()))
	assert.Equal(t, 1, store.EvictIdle(time.Now().Add(DefaultTTL+time.Second)))
}

func TestSessionReset(t *testing.T) {
	sess := &Session{
		Step:         StepAddress,
		Flow:         FlowLetterRequest,
		Nombre:       "Juan Pérez",
		Codigo:       "20210001",
		EstudianteID: 1,
		DNI:          "12345678",
		Empresa:      "Acme Corp",
		RUC:          "20123456789",
		Direccion:    "Lima, Perú",
		RutaPDF:      "/tmp/carta.pdf",
	}

	sess.Reset()

	assert.Equal(t, Session{Step: StepAddress}, *sess)
}
