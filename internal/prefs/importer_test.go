package prefs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prefkit/prefsync/internal/logger"
)

func testRegistry() *Registry {
	return NewRegistry(
		[]string{"Foo"},
		[]string{"ExtraFlag"},
		[]string{"Bar"},
		[]string{"Baz"},
	)
}

// flakyColorSink fails a specified number of SetColor calls before
// delegating to the in-memory sink.
type flakyColorSink struct {
	*InMemorySink
	failures   int
	colorCalls int
	failErr    error
}

func (s *flakyColorSink) SetColor(name string, c Color) error {
	s.colorCalls++
	if s.colorCalls <= s.failures {
		return s.failErr
	}
	return s.InMemorySink.SetColor(name, c)
}

func importString(t *testing.T, sink Sink, opts Options, content string) (Summary, error) {
	t.Helper()
	imp := NewImporter(sink, testRegistry(), logger.Discard)
	return imp.Import(context.Background(), strings.NewReader(content), opts)
}

func TestImporter_Dispatch(t *testing.T) {
	sink := NewInMemorySink()

	content := "Foo=Btrue\nBar=I42\nBaz=C16711680\n"
	summary, err := importString(t, sink, Options{IncludeBools: true}, content)
	require.NoError(t, err)

	assert.Equal(t, Summary{Lines: 3, Applied: 3}, summary)
	assert.Equal(t, map[string]bool{"Foo": true}, sink.Booleans)
	assert.Equal(t, map[string]int64{"Bar": 42}, sink.Integers)
	assert.Equal(t, map[string]Color{"Baz": {R: 255, G: 0, B: 0}}, sink.Colors)
}

func TestImporter_SinkReceivesExactCalls(t *testing.T) {
	sink := &MockSink{}
	sink.On("SetBoolean", "Foo", true).Return(nil)
	sink.On("SetInteger", "Bar", int64(42)).Return(nil)
	sink.On("SetColor", "Baz", Color{R: 255}).Return(nil)

	_, err := importString(t, sink, Options{IncludeBools: true}, "Foo=Btrue\nBar=I42\nBaz=C16711680\n")
	require.NoError(t, err)

	sink.AssertExpectations(t)
	sink.AssertNumberOfCalls(t, "SetBoolean", 1)
	sink.AssertNumberOfCalls(t, "SetInteger", 1)
	sink.AssertNumberOfCalls(t, "SetColor", 1)
}

func TestImporter_ExtraBooleans(t *testing.T) {
	sink := NewInMemorySink()

	summary, err := importString(t, sink, Options{IncludeBools: true}, "ExtraFlag=Bfalse\n")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Applied)
	assert.Equal(t, map[string]bool{"ExtraFlag": false}, sink.Booleans)
}

func TestImporter_CommentsBlanksAndUnknownNames(t *testing.T) {
	sink := NewInMemorySink()

	content := strings.Join([]string{
		"# header comment",
		"",
		"   ",
		"SomebodyElsesKey=I99",
		"AnotherUnknown=Btrue",
		"NoSeparatorHere",
	}, "\n")

	summary, err := importString(t, sink, Options{IncludeBools: true}, content)
	require.NoError(t, err)

	assert.Equal(t, 0, sink.Len(), "nothing may reach the sink")
	assert.Equal(t, 0, summary.Applied)
	assert.Equal(t, 2, summary.Skipped, "only the unrecognized names count as skipped")
	assert.Equal(t, 6, summary.Lines)
}

func TestImporter_MalformedValuesWarnAndContinue(t *testing.T) {
	sink := NewInMemorySink()

	log := &logger.MockLogger{}
	log.On("WithField", "run_id", mock.Anything).Return(nil)
	log.On("Warn", mock.Anything, mock.Anything).Return()
	log.On("Info", mock.Anything, mock.Anything).Return()

	imp := NewImporter(sink, testRegistry(), log)

	content := strings.Join([]string{
		"Foo=Bmaybe",      // bad boolean
		"Bar=Ifortytwo",   // bad integer
		"Baz=C16777216",   // packed color out of range
		"Bar=I42",         // valid, must still be applied
	}, "\n")

	summary, err := imp.Import(context.Background(), strings.NewReader(content), Options{IncludeBools: true})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Malformed)
	assert.Equal(t, 1, summary.Applied)
	assert.Equal(t, map[string]int64{"Bar": 42}, sink.Integers)
	assert.Equal(t, 0, len(sink.Booleans))
	assert.Equal(t, 0, len(sink.Colors))

	log.AssertNumberOfCalls(t, "Warn", 3)
}

func TestImporter_IncludeBoolsDisabled(t *testing.T) {
	sink := NewInMemorySink()

	content := "Foo=Btrue\nExtraFlag=Bfalse\nBar=I7\n"
	summary, err := importString(t, sink, Options{IncludeBools: false}, content)
	require.NoError(t, err)

	assert.Empty(t, sink.Booleans, "boolean preferences must never be altered")
	assert.Equal(t, map[string]int64{"Bar": 7}, sink.Integers)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 1, summary.Applied)
}

func TestImporter_DryRun(t *testing.T) {
	sink := NewInMemorySink()

	summary, err := importString(t, sink, Options{IncludeBools: true, DryRun: true}, "Foo=Btrue\nBar=I42\n")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Applied)
	assert.Equal(t, 0, sink.Len(), "dry run must not write to the sink")
}

func TestImporter_RetryOnTransientColorFailure(t *testing.T) {
	t.Run("retried once and succeeds", func(t *testing.T) {
		sink := &flakyColorSink{
			InMemorySink: NewInMemorySink(),
			failures:     1,
			failErr:      ErrTransientColorFailure,
		}

		summary, err := importString(t, sink, Options{IncludeBools: true}, "Foo=Btrue\nBaz=C255\n")
		require.NoError(t, err)

		assert.Equal(t, 2, sink.colorCalls, "second attempt must have happened")
		assert.Equal(t, 2, summary.Applied)
		assert.Equal(t, map[string]Color{"Baz": {B: 255}}, sink.Colors)
	})

	t.Run("persistent transient error surfaces after one retry", func(t *testing.T) {
		sink := &flakyColorSink{
			InMemorySink: NewInMemorySink(),
			failures:     10,
			failErr:      ErrTransientColorFailure,
		}

		_, err := importString(t, sink, Options{IncludeBools: true}, "Baz=C255\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransientColorFailure)
		assert.Equal(t, 2, sink.colorCalls, "exactly one retry is allowed")
	})

	t.Run("other errors propagate without retry", func(t *testing.T) {
		sinkErr := errors.New("settings store unavailable")
		sink := &flakyColorSink{
			InMemorySink: NewInMemorySink(),
			failures:     10,
			failErr:      sinkErr,
		}

		_, err := importString(t, sink, Options{IncludeBools: true}, "Baz=C255\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, sinkErr)
		assert.Equal(t, 1, sink.colorCalls, "no retry for unknown errors")
	})
}

func TestImporter_ImportFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.txt")
		require.NoError(t, os.WriteFile(path, []byte("Bar=I42\n"), 0644))

		sink := NewInMemorySink()
		imp := NewImporter(sink, testRegistry(), logger.Discard)

		summary, code, err := imp.ImportFile(context.Background(), path, Options{})
		require.NoError(t, err)
		assert.Equal(t, CodeSuccess, code)
		assert.Equal(t, 1, summary.Applied)
	})

	t.Run("missing file reports open failure", func(t *testing.T) {
		imp := NewImporter(NewInMemorySink(), testRegistry(), logger.Discard)

		_, code, err := imp.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), Options{})
		require.Error(t, err)
		assert.Equal(t, CodeOpenFailure, code)
	})

	t.Run("sink failure reports generic failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.txt")
		require.NoError(t, os.WriteFile(path, []byte("Baz=C255\n"), 0644))

		sink := &flakyColorSink{
			InMemorySink: NewInMemorySink(),
			failures:     10,
			failErr:      errors.New("boom"),
		}
		imp := NewImporter(sink, testRegistry(), logger.Discard)

		_, code, err := imp.ImportFile(context.Background(), path, Options{})
		require.Error(t, err)
		assert.Equal(t, CodeFailure, code)
	})
}

func TestImporter_DefaultRegistryFallback(t *testing.T) {
	sink := NewInMemorySink()
	imp := NewImporter(sink, nil, nil)

	summary, err := imp.Import(context.Background(), strings.NewReader("FontSize=I13\n"), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Applied)
	assert.Equal(t, map[string]int64{"FontSize": 13}, sink.Integers)
}
