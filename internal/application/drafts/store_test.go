package drafts

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ememar-console/internal/domain"
)

type draft struct {
	Lines []int
}

func newClockedStore() (*Store[draft], *time.Time) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	s := NewStore[draft](time.Hour)
	s.SetClock(func() time.Time { return now })
	return s, &now
}

func TestStore_CreateGetUpdate(t *testing.T) {
	s, _ := newClockedStore()
	id, _ := s.Create("op", draft{})

	got, _, err := s.Update("op", id, func(d *draft) error {
		d.Lines = append(d.Lines, 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.Lines)

	got, _, err = s.Get("op", id)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.Lines)
}

func TestStore_UpdateFallidoNoCambia(t *testing.T) {
	s, _ := newClockedStore()
	id, _ := s.Create("op", draft{Lines: []int{1}})

	_, _, err := s.Update("op", id, func(d *draft) error {
		d.Lines = nil
		return errors.New("rechazado")
	})
	require.Error(t, err)

	got, _, _ := s.Get("op", id)
	assert.Equal(t, []int{1}, got.Lines)
}

func TestStore_OtroOperadorNoLoVe(t *testing.T) {
	s, _ := newClockedStore()
	id, _ := s.Create("op-a", draft{})

	_, _, err := s.Get("op-b", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, s.Delete("op-b", id))
	assert.True(t, s.Delete("op-a", id))
}

func TestStore_VencePorInactividad(t *testing.T) {
	s, now := newClockedStore()
	id, exp := s.Create("op", draft{})
	assert.Equal(t, now.Add(time.Hour), exp)

	*now = now.Add(50 * time.Minute)
	_, _, err := s.Get("op", id)
	require.NoError(t, err, "el acceso renueva el vencimiento")

	*now = now.Add(50 * time.Minute)
	_, _, err = s.Get("op", id)
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	_, _, err = s.Get("op", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, s.Len())
}
