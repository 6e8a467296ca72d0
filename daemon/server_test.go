package daemon

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdbkit/kdbkit/backend/memstore"
	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/protocol"
)

func startTestServer(t *testing.T, backend Backend) net.Conn {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	srv := NewServer(backend, zerolog.Nop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go srv.Serve(ctx, ln)

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServerHandlesGetKey(t *testing.T) {
	store := memstore.New(kdbkey.New("system/sw/app", kdbkey.WithValue([]byte("hello"))))
	conn := startTestServer(t, store)

	req := protocol.NewRequest(protocol.GETKEY, protocol.EncodeKeyArg(kdbkey.New("system/sw/app")))
	require.NoError(t, protocol.WriteMessage(conn, req))

	reply, err := protocol.ReadMessage(conn)
	require.NoError(t, err)
	assert.Equal(t, protocol.TypeReply, reply.Type)
	assert.Equal(t, protocol.GETKEY, reply.Procedure)

	status, result, err := protocol.DecodeReplyStatus(reply.Payload)
	require.NoError(t, err)
	require.Equal(t, protocol.StatusOK, status)

	got, err := protocol.DecodeKeyReply(result)
	require.NoError(t, err)
	assert.Equal(t, "system/sw/app", got.Name().String())
	assert.Equal(t, []byte("hello"), got.Value().Bytes())
}

func TestServerGetKeyMissReturnsNotFound(t *testing.T) {
	store := memstore.New()
	conn := startTestServer(t, store)

	req := protocol.NewRequest(protocol.GETKEY, protocol.EncodeKeyArg(kdbkey.New("system/missing")))
	require.NoError(t, protocol.WriteMessage(conn, req))

	reply, err := protocol.ReadMessage(conn)
	require.NoError(t, err)
	status, _, err := protocol.DecodeReplyStatus(reply.Payload)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusNotFound, status)
}

func TestServerReservedProcedureIsNotImplemented(t *testing.T) {
	store := memstore.New()
	conn := startTestServer(t, store)

	req := protocol.NewRequest(protocol.SETKEY, protocol.EncodeKeyArg(kdbkey.New("system/x")))
	require.NoError(t, protocol.WriteMessage(conn, req))

	reply, err := protocol.ReadMessage(conn)
	require.NoError(t, err)
	status, _, err := protocol.DecodeReplyStatus(reply.Payload)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusNotImplemented, status)
}

func TestServerClosesAfterCloseRequest(t *testing.T) {
	store := memstore.New()
	conn := startTestServer(t, store)

	req := protocol.NewRequest(protocol.CLOSE, nil)
	require.NoError(t, protocol.WriteMessage(conn, req))

	reply, err := protocol.ReadMessage(conn)
	require.NoError(t, err)
	assert.Equal(t, protocol.CLOSE, reply.Procedure)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}
