package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/persist/dialect/h2"
	"github.com/syssam/persist/query"
)

const entities = `
entities:
  - name: User
    table: users
    columns:
      - {name: id, type: int64, id: true, generated: identity}
      - {name: name, type: string, size: 20, not_null: true}
  - table: tags
    columns:
      - {name: code, type: string, size: 8, id: true}
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := writeFile(t, entities)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--drop", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, strings.Join([]string{
		"drop table users;",
		"create table users (id bigint generated by default as identity, name varchar(20) not null, primary key (id));",
		"drop table tags;",
		"create table tags (code varchar(8) not null, primary key (code));",
	}, "\n")+"\n", stdout.String())
}

func TestRunDialect(t *testing.T) {
	t.Parallel()

	path := writeFile(t, entities)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-d", "mysql", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "create table users (id bigint auto_increment, name varchar(20) not null, primary key (id));")
	assert.NotContains(t, stdout.String(), "drop table")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(ctx, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "requires at least 1 arg")

	assert.Equal(t, 1, run(ctx, []string{"--dialect", "oracle", "x.yaml"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown dialect "oracle"`)
	assert.Equal(t, 1, run(ctx, []string{"--bogus"}, &stdout, &stderr))
	assert.Equal(t, 1, run(ctx, []string{filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr))

	bad := writeFile(t, "entities: [{table: t, columns: [{name: id, type: int}]}]")
	stderr.Reset()
	assert.Equal(t, 1, run(ctx, []string{bad}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "primary key")
}

func TestRenderOrder(t *testing.T) {
	t.Parallel()

	var doc strings.Builder
	doc.WriteString("entities:\n")
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		doc.WriteString("  - table: " + name + "\n    columns: [{name: id, type: int, id: true}]\n")
	}
	path := writeFile(t, doc.String())

	var out bytes.Buffer
	r := &renderer{gen: query.New(h2.New()), out: &out, log: slog.New(slog.DiscardHandler)}
	require.NoError(t, r.renderFiles(context.Background(), []string{path}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "create table a (id integer not null, primary key (id));", lines[0])
	assert.Equal(t, "create table l (id integer not null, primary key (id));", lines[11])
}

// syncBuffer guards a buffer written by the watch loop and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "entities: [{table: first, columns: [{name: id, type: int64, id: true}]}]")
	out := &syncBuffer{}
	r := &renderer{gen: query.New(h2.New()), out: out, log: slog.New(slog.DiscardHandler)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.watch(ctx, []string{path}) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "create table first")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("entities: [{table: second, columns: [{name: id, type: int64, id: true}]}]"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "create table second")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
