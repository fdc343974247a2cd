package datastore_test

import (
	"io/fs"
	"testing"

	datastore "github.com/0xalexb/hjarta-datastore"
	filefetcher "github.com/0xalexb/hjarta-datastore/fetcher/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFormat mirrors the shape of the complete.yaml and no_tags.yaml fixtures.
type testFormat struct {
	Name     string   `yaml:"name"`
	ID       uint64   `yaml:"id"`
	Rating   float64  `yaml:"rating"`
	Complete bool     `yaml:"complete"`
	Tags     []string `yaml:"tags"`
}

func TestOpen(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	assert.Equal(t, "testdata", store.Root())
}

func TestOpen_MissingRootPerformsNoIO(t *testing.T) {
	t.Parallel()

	// Open never touches the filesystem; the miss only surfaces on lookup.
	store := datastore.Open("testdata/does-not-exist")

	_, err := datastore.Get[int](store, "anything")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrKeyNotFound)
}

func TestGet_ResidualKeyInNestedFile(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	// a/b/c/d.* does not exist, so the match comes from a/b/c.yaml with
	// residual key "d".
	value, err := datastore.Get[int](store, "a.b.c.d")

	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestGet_WholeFileDocument(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	reference := testFormat{
		Name:     "Complete",
		ID:       1,
		Rating:   1.0,
		Complete: true,
		Tags:     []string{"complete", "done", "finished"},
	}

	value, err := datastore.Get[testFormat](store, "complete")

	require.NoError(t, err)
	assert.Equal(t, reference, value)
}

func TestGet_LongerPathWins(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	// Both interpretations exist on disk: a/b.yaml holds c: 1 and a.yaml
	// holds b.c: 2. The longer path must win. The even longer a/b/c.yaml
	// exists too, but its whole document does not decode into an int, so
	// that interpretation is skipped.
	value, err := datastore.Get[int](store, "a.b.c")

	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestGet_LongestPathWinsWhenShapeMatches(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	value, err := datastore.Get[map[string]int](store, "a.b.c")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"d": 42}, value)
}

func TestGet_InvalidKeyPath(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "doubled delimiter",
			input: "a..b",
		},
		{
			name:  "contains slash",
			input: "a/b.c",
		},
		{
			name:  "trailing delimiter",
			input: "a.b.",
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			_, err := datastore.Get[int](store, testInfo.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, datastore.ErrInvalidKeyPath)
		})
	}
}

func TestGet_InvalidKeyPathProbesNothing(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{}
	store := datastore.Open("testdata", datastore.WithFetcher(fetcher))

	_, err := datastore.Get[int](store, "not..valid")

	require.ErrorIs(t, err, datastore.ErrInvalidKeyPath)
	assert.Equal(t, 0, fetcher.calls)
}

func TestGet_Exhausted(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.Get[int](store, "does.not.exist")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrKeyNotFound)
}

func TestGet_NonMappingIntermediateIsSoftMiss(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	// scalar.yaml holds x: 5; descending past the scalar is a miss for
	// that candidate, and with no other candidate left the search fails
	// as a whole.
	_, err := datastore.Get[int](store, "scalar.x.y")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrKeyNotFound)
}

func TestGet_FinalKeyDecodeFailureIsHard(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	// complete.yaml has name: Complete, which does not decode into int.
	// The deepest interpretation matched, so this is an error rather than
	// a reason to keep searching.
	_, err := datastore.Get[int](store, "complete.name")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrDataParse)
}

func TestGet_PerCallExtensionOverride(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	value, err := datastore.Get[int](store, "config.value", "json")

	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestGetWithPath_Success(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	reference := testFormat{
		Name:     "No Tags",
		ID:       2,
		Rating:   0.6,
		Complete: false,
		Tags:     nil,
	}

	value, err := datastore.GetWithPath[testFormat](store, "no_tags.yaml")

	require.NoError(t, err)
	assert.Equal(t, reference, value)
}

func TestGetWithPath_MissingFile(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.GetWithPath[testFormat](store, "missing.yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGetWithPath_NoExtensionSearch(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	// a/b.yaml exists, but the explicit path names the file exactly;
	// no alternate extension is ever tried.
	_, err := datastore.GetWithPath[map[string]int](store, "a/b")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrRead)
}

func TestGetWithPath_BadStructure(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.GetWithPath[testFormat](store, "bad.yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrDataParse)
}

func TestGetWithKey_Success(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	value, err := datastore.GetWithKey[int](store, "a/b.yaml", "c")

	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestGetWithKey_MissingKey(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.GetWithKey[int](store, "a/b.yaml", "z")

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrKeyNotFound)
}

func TestGetWithKeys_Success(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	value, err := datastore.GetWithKeys[int](store, "a.yaml", []string{"b", "c"})

	require.NoError(t, err)
	assert.Equal(t, 2, value)
}

func TestGetWithKeys_EmptyKeys(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.GetWithKeys[int](store, "a.yaml", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrEmptyKeys)
	assert.NotErrorIs(t, err, datastore.ErrKeyNotFound)
}

func TestGetWithKeys_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.GetWithKeys[int](store, "scalar.yaml", []string{"x", "y"})

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrKeyNotFound)
}

func TestGetWithKeys_DecodeFailure(t *testing.T) {
	t.Parallel()

	store := datastore.Open("testdata")

	_, err := datastore.GetWithKeys[int](store, "complete.yaml", []string{"name"})

	require.Error(t, err)
	assert.ErrorIs(t, err, datastore.ErrDataParse)
}

func TestGetWithPath_SingleProbe(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{next: filefetcher.New("testdata")}
	store := datastore.Open("testdata", datastore.WithFetcher(fetcher))

	_, err := datastore.GetWithPath[testFormat](store, "complete.yaml")

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

// countingFetcher counts probes, delegating to a real fetcher when one is set.
type countingFetcher struct {
	next  datastore.Fetcher
	calls int
}

func (f *countingFetcher) Fetch(path string) ([]byte, error) {
	f.calls++

	if f.next == nil {
		return nil, fs.ErrNotExist
	}

	return f.next.Fetch(path)
}
