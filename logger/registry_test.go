package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
)

func TestBuilder_RequiresName(t *testing.T) {
	r := NewRegistry()
	_, err := r.NewBuilder().Build()
	assert.ErrorIs(t, err, core.ErrConfiguration)
	assert.Zero(t, r.Len())
}

func TestBuilder_InvalidLevel(t *testing.T) {
	_, err := NewRegistry().NewBuilder().SetName("x").SetLevel(core.Level(25)).Build()
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestBuilder_Defaults(t *testing.T) {
	l, err := NewRegistry().NewBuilder().SetName("defaults").Build()
	require.NoError(t, err)
	assert.Equal(t, InfoLevel, l.Level())
	assert.NotNil(t, l.DefaultFormatter())
	assert.Empty(t, l.Appenders())
}

func TestRegistry_LastBuildWins(t *testing.T) {
	r := NewRegistry()
	first, err := r.NewBuilder().SetName("dup").SetLevel(DebugLevel).Build()
	require.NoError(t, err)
	second, err := r.NewBuilder().SetName("dup").SetLevel(ErrorLevel).Build()
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
	got, err := r.Get("dup")
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
	assert.Equal(t, ErrorLevel, got.Level())
}

func TestRegistry_GetRemove(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.ErrorIs(t, r.Remove("missing"), core.ErrNotFound)

	_, err = r.NewBuilder().SetName("b").Build()
	require.NoError(t, err)
	_, err = r.NewBuilder().SetName("a").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Names())

	require.NoError(t, r.Remove("a"))
	assert.Equal(t, []string{"b"}, r.Names())
}

func TestRegistry_Each(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		_, err := r.NewBuilder().SetName(name).Build()
		require.NoError(t, err)
	}

	var seen []string
	r.Each(func(l *Logger) bool {
		seen = append(seen, l.Name())
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)

	seen = nil
	r.Each(func(l *Logger) bool {
		seen = append(seen, l.Name())
		return false
	})
	assert.Equal(t, []string{"a"}, seen)
}

func TestRegistry_GlobalLogger(t *testing.T) {
	r := NewRegistry()
	g := r.GlobalLogger()
	require.NotNil(t, g)
	assert.Equal(t, GlobalName, g.Name())
	assert.Equal(t, InfoLevel, g.Level())
	assert.Same(t, g, r.GlobalLogger())
	assert.Equal(t, 1, r.Len())

	as := g.Appenders()
	require.Len(t, as, 1)
	assert.IsType(t, &appender.Console{}, as[0])
}

func TestGlobal(t *testing.T) {
	assert.Same(t, Global(), Global())
	assert.Same(t, GetGlobalLogger(), Global().GlobalLogger())

	l, err := NewBuilder().SetName("registered-globally").Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = Global().Remove("registered-globally") })

	got, err := GetLogger("registered-globally")
	require.NoError(t, err)
	assert.Same(t, l, got)
}
