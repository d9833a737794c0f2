package store

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDualStore_SaveLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data", newTestLogger())

	want := []record{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}}
	require.NoError(t, s.Save("things", want))

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Equal(t, want, got)
}

func TestDualStore_DurableFileIsPrettyPrinted(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data", newTestLogger())

	require.NoError(t, s.Save("things", []record{{ID: "1", Name: "alpha"}}))

	data, err := afero.ReadFile(fs, "data/things.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func TestDualStore_DurableWriteFailureIsNotDataLoss(t *testing.T) {
	// Read-only filesystem: every durable write fails
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := New(fs, "data", newTestLogger())

	want := []record{{ID: "1", Name: "alpha"}}
	require.NoError(t, s.Save("things", want))

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Equal(t, want, got)
}

func TestDualStore_CorruptDurableFileFallsBackToMemory(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data", newTestLogger())

	want := []record{{ID: "1", Name: "alpha"}}
	require.NoError(t, s.Save("things", want))

	require.NoError(t, afero.WriteFile(fs, "data/things.json", []byte("{not json"), 0o644))

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Equal(t, want, got)
}

func TestDualStore_CorruptFileWithoutMemoryReadsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/things.json", []byte("{not json"), 0o644))

	// Fresh process: no in-memory copy exists yet
	s := New(fs, "data", newTestLogger())

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Empty(t, got)
}

func TestDualStore_LoadReadsDurableFileOnFreshProcess(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/things.json", []byte(`[{"id":"9","name":"from-disk"}]`), 0o644))

	s := New(fs, "data", newTestLogger())

	var got []record
	require.NoError(t, s.Load("things", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "from-disk", got[0].Name)
}

func TestDualStore_StaleDurableFileDoesNotShadowMemory(t *testing.T) {
	// A file from an earlier successful write survives on a disk that
	// has since become unwritable: saves update memory only, but the
	// old file stays readable
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "data/things.json", []byte(`[{"id":"1","name":"old"}]`), 0o644))

	s := New(afero.NewReadOnlyFs(base), "data", newTestLogger())

	want := []record{{ID: "1", Name: "new"}}
	require.NoError(t, s.Save("things", want))

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Equal(t, want, got)
}

func TestDualStore_PurgeEmptiesBothBackings(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data", newTestLogger())

	require.NoError(t, s.Save("things", []record{{ID: "1", Name: "alpha"}}))
	require.NoError(t, s.Save("others", []record{{ID: "2", Name: "beta"}}))

	require.NoError(t, s.Purge())

	var things, others []record
	require.NoError(t, s.Load("things", &things))
	require.NoError(t, s.Load("others", &others))
	assert.Empty(t, things)
	assert.Empty(t, others)

	exists, err := afero.Exists(fs, "data/things.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDualStore_PurgeOnUnwritableDiskDoesNotResurrectData(t *testing.T) {
	// Neither Remove nor the empty-collection overwrite can succeed, so
	// the stale file stays readable after the purge
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "data/things.json", []byte(`[{"id":"1","name":"old"}]`), 0o644))

	s := New(afero.NewReadOnlyFs(base), "data", newTestLogger())

	require.NoError(t, s.Save("things", []record{{ID: "1", Name: "new"}}))
	require.NoError(t, s.Purge())

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Empty(t, got)
}

func TestDualStore_SaveAfterPurgeReplacesTombstone(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "data/things.json", []byte(`[{"id":"1","name":"old"}]`), 0o644))

	s := New(afero.NewReadOnlyFs(base), "data", newTestLogger())
	require.NoError(t, s.Purge())

	want := []record{{ID: "2", Name: "fresh"}}
	require.NoError(t, s.Save("things", want))

	var got []record
	require.NoError(t, s.Load("things", &got))
	assert.Equal(t, want, got)
}
