package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/formatter"
)

// build creates a logger in a private registry writing to buf
func build(t *testing.T, level Level, buf *bytes.Buffer) *Logger {
	t.Helper()
	l, err := NewRegistry().NewBuilder().
		SetName("test").
		SetLevel(level).
		SetFormatter(formatter.NewSimpleFormatter(formatter.Config{})).
		AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: buf})).
		SetErrorHandler(DiscardErrors).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return l
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, InfoLevel, &buf)

	// Debug should not be logged (below Info level)
	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	logger.Info("info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Errorf("Expected 'info message' in output, got: %s", buf.String())
	}

	buf.Reset()
	logger.Warning("warning message")
	if !strings.Contains(buf.String(), "WARNING]: warning message") {
		t.Errorf("Expected 'warning message' in output, got: %s", buf.String())
	}

	buf.Reset()
	logger.Critical("critical message")
	if !strings.Contains(buf.String(), "CRITICAL]: critical message") {
		t.Errorf("Expected 'critical message' in output, got: %s", buf.String())
	}
}

type countingAppender struct {
	mu      sync.Mutex
	records []*core.Record
	err     error
}

func (c *countingAppender) Append(rec *core.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
	return c.err
}

func (c *countingAppender) Close() error { return nil }

func (c *countingAppender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func TestLogger_LevelGateAllPairs(t *testing.T) {
	for _, minLevel := range core.Levels() {
		for _, lvl := range core.Levels() {
			ca := &countingAppender{}
			l, err := NewRegistry().NewBuilder().SetName("gate").SetLevel(minLevel).AddAppender(ca).Build()
			if err != nil {
				t.Fatal(err)
			}
			l.Log(lvl, "x")

			want := 0
			if lvl >= minLevel {
				want = 1
			}
			if got := ca.count(); got != want {
				t.Errorf("min=%s level=%s: got %d records, want %d", minLevel, lvl, got, want)
			}
		}
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, DebugLevel, &buf)

	logger.Info("test",
		String("string", "value"),
		Int("int", 42),
		Bool("bool", true),
		Float64("float", 3.14),
	)

	output := buf.String()
	for _, want := range []string{"string=value", "int=42", "bool=true", "float=3.14"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestLogger_FormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, DebugLevel, &buf)

	logger.Infof("User %s logged in with ID %d", "john", 123)
	if !strings.Contains(buf.String(), ": User john logged in with ID 123") {
		t.Errorf("Expected formatted message, got: %s", buf.String())
	}

	buf.Reset()
	logger.SetLevel(ErrorLevel)
	logger.Warningf("dropped %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Warningf below level was logged: %s", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, InfoLevel, &buf)

	child := logger.With(String("request_id", "123"))
	child.Info("child message")
	logger.Info("parent message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "request_id=123") {
		t.Errorf("Expected request_id in child output, got: %s", lines[0])
	}
	if strings.Contains(lines[1], "request_id") {
		t.Errorf("Parent logger should not carry child fields, got: %s", lines[1])
	}

	// children share the parent's level
	logger.SetLevel(ErrorLevel)
	if child.Level() != ErrorLevel {
		t.Errorf("child.Level() = %s, want ERROR", child.Level())
	}
}

func TestLogger_RecordsAreShared(t *testing.T) {
	a, b := &countingAppender{}, &countingAppender{}
	l, err := NewRegistry().NewBuilder().SetName("shared").AddAppender(a).AddAppender(b).Build()
	if err != nil {
		t.Fatal(err)
	}

	l.Info("hello", String("k", "v"))
	if a.records[0] != b.records[0] {
		t.Error("appenders should receive the same record")
	}
	rec := a.records[0]
	if rec.Logger != "shared" || rec.Level != InfoLevel || rec.Message != "hello" || len(rec.Fields) != 1 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Time.IsZero() {
		t.Error("record time not set")
	}
}

func TestLogger_AppenderManagement(t *testing.T) {
	a, b := &countingAppender{}, &countingAppender{}
	l, err := NewRegistry().NewBuilder().SetName("mgmt").Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Appenders()) != 0 {
		t.Fatal("expected no appenders")
	}

	l.AddAppender(a)
	l.AddAppender(b)
	if got := l.Appenders(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Appenders() = %v", got)
	}

	if err := l.RemoveAppender(a); err != nil {
		t.Fatalf("RemoveAppender() error = %v", err)
	}
	if err := l.RemoveAppender(a); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("RemoveAppender() twice: error = %v, want ErrNotFound", err)
	}

	l.Info("only b")
	if a.count() != 0 || b.count() != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a.count(), b.count())
	}

	l.ClearAppenders()
	l.Info("nobody")
	if b.count() != 1 {
		t.Errorf("cleared logger still dispatched")
	}
}

func TestLogger_DefaultFormatterApplied(t *testing.T) {
	var buf bytes.Buffer
	c := appender.NewConsole(appender.ConsoleConfig{Writer: &buf})
	jsonFmt := formatter.NewJSONFormatter(formatter.Config{})

	l, err := NewRegistry().NewBuilder().SetName("fmt").SetFormatter(jsonFmt).AddAppender(c).Build()
	if err != nil {
		t.Fatal(err)
	}
	if c.Formatter() != jsonFmt {
		t.Fatal("default formatter was not applied")
	}

	l.Info("hi")
	if !strings.HasPrefix(buf.String(), `{"timestamp":`) {
		t.Errorf("expected JSON output, got: %s", buf.String())
	}
}

type panickingAppender struct{}

func (panickingAppender) Append(*core.Record) error { panic("appender bug") }
func (panickingAppender) Close() error              { return nil }

func TestLogger_FailingAppenderIsolation(t *testing.T) {
	var reported []error
	good := &countingAppender{}
	bad := &countingAppender{err: errors.New("disk full")}

	l, err := NewRegistry().NewBuilder().
		SetName("isolation").
		AddAppender(bad).
		AddAppender(panickingAppender{}).
		AddAppender(good).
		SetErrorHandler(func(err error) { reported = append(reported, err) }).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	l.Error("still delivered")

	if good.count() != 1 {
		t.Errorf("good appender got %d records, want 1", good.count())
	}
	if len(reported) != 2 {
		t.Fatalf("reported %d errors, want 2: %v", len(reported), reported)
	}
	for _, err := range reported {
		if !errors.Is(err, core.ErrDestination) {
			t.Errorf("reported error %v is not a destination error", err)
		}
	}
	if s := l.Stats(); s.Logged != 1 || s.Failed != 2 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestLogger_UnwritableFileDoesNotBlockSecondAppender(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	f, err := appender.NewFile(appender.FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	// a closed file rejects writes
	f.Close()

	var buf bytes.Buffer
	l, err := NewRegistry().NewBuilder().
		SetName("two").
		AddAppender(f).
		AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: &buf})).
		SetErrorHandler(DiscardErrors).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	l.Info("reaches console")
	if !strings.Contains(buf.String(), ": reaches console") {
		t.Errorf("second appender did not receive record: %q", buf.String())
	}
	if l.Stats().Failed != 1 {
		t.Errorf("Failed = %d, want 1", l.Stats().Failed)
	}
}

func TestLogger_EndToEndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t1.log")
	f, err := appender.NewFile(appender.FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}

	l, err := NewRegistry().NewBuilder().
		SetName("t1").
		SetFormatter(formatter.NewSimpleFormatter(formatter.Config{})).
		AddAppender(f).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %q", data)
	}
	if !strings.HasSuffix(lines[0], ": hello") {
		t.Errorf("line %q does not end in ': hello'", lines[0])
	}
}

func TestLogger_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flush.log")
	f, err := appender.NewFile(appender.FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	l, err := NewRegistry().NewBuilder().
		SetName("flush").
		AddAppender(f).
		AddAppender(&countingAppender{}).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.Warning("before flush")
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "WARNING]: before flush") {
		t.Errorf("file not flushed, got %q", data)
	}
}

func TestLogger_ErrorHandlerPanicIsContained(t *testing.T) {
	l, err := NewRegistry().NewBuilder().
		SetName("handler").
		AddAppender(&countingAppender{err: errors.New("x")}).
		SetErrorHandler(func(error) { panic("handler bug") }).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	l.Info("must not panic")
}

func TestLogger_Concurrent(t *testing.T) {
	ca := &countingAppender{}
	l, err := NewRegistry().NewBuilder().SetName("concurrent").AddAppender(ca).Build()
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Info("msg", Int("j", j))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			extra := &countingAppender{}
			l.AddAppender(extra)
			_ = l.RemoveAppender(extra)
		}
	}()
	wg.Wait()

	if ca.count() != 800 {
		t.Errorf("got %d records, want 800", ca.count())
	}
}

func TestMetadata(t *testing.T) {
	fields := Metadata(map[string]any{
		"b":    2,
		"a":    "x",
		"err":  errors.New("boom"),
		"flag": true,
	})
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	if strings.Join(keys, ",") != "a,b,err,flag" {
		t.Errorf("keys = %v, want sorted", keys)
	}
	if fields[1].Type != core.IntType || fields[2].Type != core.ErrorType || fields[3].Type != core.BoolType {
		t.Errorf("unexpected field types: %+v", fields)
	}
}

func TestMetadata_NumericKinds(t *testing.T) {
	fields := Metadata(map[string]any{
		"i32": int32(-3),
		"u8":  uint8(200),
		"u":   uint(9),
		"big": uint64(math.MaxUint64),
		"f32": float32(1.5),
	})
	byKey := make(map[string]core.Field, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f
	}

	for _, key := range []string{"i32", "u8", "u"} {
		if byKey[key].Type != core.Int64Type {
			t.Errorf("%s: type = %v, want Int64Type", key, byKey[key].Type)
		}
	}
	if byKey["i32"].Int64 != -3 || byKey["u8"].Int64 != 200 || byKey["u"].Int64 != 9 {
		t.Errorf("unexpected integer values: %+v", fields)
	}
	if byKey["big"].Type != core.AnyType {
		t.Errorf("uint64 above MaxInt64 should stay Any, got %v", byKey["big"].Type)
	}
	if byKey["f32"].Type != core.Float64Type || byKey["f32"].Float64 != 1.5 {
		t.Errorf("float32 not widened: %+v", byKey["f32"])
	}
}

func TestLogger_JSONKeepsNestedMetadata(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewRegistry().NewBuilder().
		SetName("test").
		SetFormatter(formatter.NewJSONFormatter(formatter.Config{})).
		AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: &buf})).
		SetErrorHandler(DiscardErrors).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	l.Info("order", Metadata(map[string]any{
		"items": []string{"book", "pen"},
		"ratio": math.NaN(),
		"count": uint(3),
	})...)

	var data struct {
		Items []string `json:"items"`
		Ratio string   `json:"ratio"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(data.Items) != 2 || data.Items[1] != "pen" || data.Ratio != "NaN" || data.Count != 3 {
		t.Errorf("unexpected decoded record: %+v", data)
	}
}

func BenchmarkLogger_LevelCheck(b *testing.B) {
	l, _ := NewRegistry().NewBuilder().SetName("bench").SetLevel(ErrorLevel).
		AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: &bytes.Buffer{}})).Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug("filtered")
	}
}

func BenchmarkLogger_InfoWithFields(b *testing.B) {
	var buf bytes.Buffer
	l, _ := NewRegistry().NewBuilder().SetName("bench").
		AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: &buf})).Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		l.Info("request", String("method", "GET"), Int("status", 200))
	}
}
