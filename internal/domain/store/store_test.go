package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore("02", "Bandırma Köroğlu", "", true)
	require.NoError(t, err)
	assert.Equal(t, "02", s.Code())
	assert.True(t, s.IsActive())

	_, err = NewStore("", "x", "", true)
	assert.Error(t, err)
	_, err = NewStore("02; DROP", "x", "", true)
	assert.Error(t, err)
	_, err = NewStore("02", "", "", true)
	assert.Error(t, err)
}

func TestDeviceUpdate(t *testing.T) {
	serial := "SN-1"
	d, err := NewDevice("02", "Kasa 1", "POS", &serial)
	require.NoError(t, err)

	label := "Kasa 2"
	empty := ""
	require.NoError(t, d.Update(&label, nil, &empty))
	assert.Equal(t, "Kasa 2", d.Label())
	assert.Equal(t, "POS", d.Type())
	assert.Nil(t, d.Serial())

	assert.Error(t, d.Update(&empty, nil, nil))
}
