package cli

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"BookCatalog/internal/catalog"
)

func startCatalog(t *testing.T) (string, *catalog.Service) {
	t.Helper()

	bc := catalog.NewBroadcaster(16, nil, nil)
	svc := catalog.NewService(catalog.NewStore(bc), bc, zap.NewNop())
	require.NoError(t, svc.Seed([]catalog.Book{
		catalog.DemoBook,
		{ID: 1, Title: "Dune", Author: "Frank Herbert"},
	}))

	srv := catalog.NewGRPCServer(&catalog.GRPCServer{Service: svc, Log: zap.NewNop()}, catalog.GRPCDeps{
		Log:     zap.NewNop(),
		Service: "catalog",
	})
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis.Addr().String(), svc
}

// syncBuffer lets the watch test read output while the command still writes.
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

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr syncBuffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "bookctl", cmd.Use)

	for _, name := range []string{"list", "insert", "get", "delete", "watch"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	addr := cmd.PersistentFlags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, "localhost:50051", addr.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestList_Text(t *testing.T) {
	addr, _ := startCatalog(t)

	out, _, err := execute(t, "--addr", addr, "list")
	require.NoError(t, err)
	golden(t).Assert(t, "list_text", []byte(out))
}

func TestList_JSON(t *testing.T) {
	addr, _ := startCatalog(t)

	out, _, err := execute(t, "--addr", addr, "--format", "json", "list")
	require.NoError(t, err)
	golden(t).Assert(t, "list_json", []byte(out))
}

func TestInsertGetDelete(t *testing.T) {
	addr, svc := startCatalog(t)

	out, _, err := execute(t, "--addr", addr, "insert", "7", "Emma", "Jane Austen")
	require.NoError(t, err)
	assert.Equal(t, "Inserted #7 \"Emma\" by Jane Austen\n", out)

	out, _, err = execute(t, "--addr", addr, "get", "7")
	require.NoError(t, err)
	assert.Equal(t, "#7 \"Emma\" by Jane Austen\n", out)

	out, _, err = execute(t, "--addr", addr, "--format", "json", "get", "7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"id":7,"title":"Emma","author":"Jane Austen"}}`, out)

	out, _, err = execute(t, "--addr", addr, "delete", "7")
	require.NoError(t, err)
	assert.Equal(t, "Deleted book 7\n", out)

	_, err = svc.Store.Get(7)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRPCFailuresReportCode(t *testing.T) {
	addr, _ := startCatalog(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"get missing", []string{"get", "404"}, "GetBook failed with NOT_FOUND: book not found\n"},
		{"delete missing", []string{"delete", "404"}, "DeleteBook failed with NOT_FOUND: book not found\n"},
		{"duplicate insert", []string{"insert", "1", "Dune", "Frank Herbert"}, "InsertBook failed with ALREADY_EXISTS: book already exists\n"},
		{"zero id", []string{"get", "0"}, "GetBook failed with INVALID_ARGUMENT: invalid argument: id must be greater than 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := execute(t, append([]string{"--addr", addr}, tc.args...)...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, tc.want, errOut)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.True(t, IsReported(err))
		})
	}
}

func TestRPCFailure_JSON(t *testing.T) {
	addr, _ := startCatalog(t)

	out, _, err := execute(t, "--addr", addr, "--format", "json", "get", "404")
	require.Error(t, err)
	assert.JSONEq(t,
		`{"status":"error","error":{"op":"GetBook","code":"NOT_FOUND","message":"book not found"}}`,
		out)
}

func TestUnreachableServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	_, errOut, err := execute(t, "--addr", addr, "--timeout", "2s", "list")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "ListBooks failed with ")
}

func TestArgumentErrors(t *testing.T) {
	_, _, err := execute(t, "get", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.False(t, IsReported(err))

	_, _, err = execute(t, "--format", "xml", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)

	_, _, err = execute(t, "insert", "1", "only-title")
	require.Error(t, err)
}

func TestWatch_Text(t *testing.T) {
	addr, svc := startCatalog(t)

	var stdout syncBuffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--addr", addr, "watch", "--count", "2"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(context.Background()) }()

	require.Eventually(t, func() bool { return svc.Broadcaster.Count() == 1 }, 5*time.Second, 5*time.Millisecond)

	ctx := context.Background()
	_, err := svc.Insert(ctx, catalog.Book{ID: 5, Title: "Emma", Author: "Jane Austen"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 5))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not exit after --count events")
	}
	golden(t).Assert(t, "watch_text", []byte(stdout.String()))
}

func TestWatch_ServerShutdown(t *testing.T) {
	addr, svc := startCatalog(t)

	var stdout, stderr syncBuffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--addr", addr, "--format", "json", "watch"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(context.Background()) }()

	require.Eventually(t, func() bool { return svc.Broadcaster.Count() == 1 }, 5*time.Second, 5*time.Millisecond)
	_, err := svc.Insert(context.Background(), catalog.Book{ID: 9, Title: "T", Author: "A"})
	require.NoError(t, err)
	svc.Shutdown()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not end on shutdown")
	}

	assert.Equal(t,
		`{"seq":3,"kind":"INSERTED","book":{"id":9,"title":"T","author":"A"}}`+"\n"+
			`{"status":"error","error":{"op":"WatchBooks","code":"UNAVAILABLE","message":"server shutting down"}}`+"\n",
		stdout.String())
}

func TestCodeName(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", CodeName(5))
	assert.Equal(t, "CANCELLED", CodeName(1))
	assert.Equal(t, "CODE(99)", CodeName(99))
}
