package project

import (
	"os"
	"path/filepath"
	"testing"

	"g2rapid/common/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStoreCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewSettingsStore(path)
	require.True(t, file.Exists(path))

	s := store.Load()
	assert.Equal(t, DefaultNamingParameters(), s.Parameters())
	assert.Equal(t, ConversionParameters{}, s.Conversion())
}

func TestSettingsStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewSettingsStore(path)

	s := NewAppSettings()
	s.SetModuleName("Cell")
	s.SetWorkobjName("Table")
	require.NoError(t, s.SetTCPPosition("0,0,120.5"))
	require.NoError(t, s.SetTCPOrientation("0,90,0"))
	require.NoError(t, s.SetArmSpeed(60))
	require.NoError(t, s.SetZone(2))
	s.SetOrientationPresets(2, 0)
	require.NoError(t, store.Save(s))

	loaded := NewSettingsStore(path).Load()
	assert.Equal(t, s.Parameters(), loaded.Parameters())
	assert.Equal(t, s.Conversion(), loaded.Conversion())
	assert.Equal(t, s.OrientationPresets(), loaded.OrientationPresets())
	assert.Equal(t, s.TCPObject(), loaded.TCPObject())
	assert.Equal(t, s.WorkObject(), loaded.WorkObject())

	assert.ErrorIs(t, store.Save(nil), ErrNilSettings)
}

func TestSettingsStoreBrokenFile(t *testing.T) {
	observeLogs(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewSettingsStore(path).Load()
	assert.Equal(t, DefaultNamingParameters(), s.Parameters())
}

func TestSettingsStoreRecreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewSettingsStore(path)
	require.NoError(t, os.Remove(path))

	s := store.Load()
	assert.Equal(t, DefaultNamingParameters(), s.Parameters())
	assert.True(t, file.Exists(path))
}
