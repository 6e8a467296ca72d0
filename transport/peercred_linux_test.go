//go:build linux

package transport

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeerCredentialsResolvesSelf(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "kdbd.sock")

	listener, err := net.ListenUnix("unix", &net.UnixAddr{Name: sockPath, Net: "unix"})
	require.NoError(t, err)
	defer listener.Close()

	accepted := make(chan *net.UnixConn, 1)
	go func() {
		conn, err := listener.AcceptUnix()
		if err == nil {
			accepted <- conn
		}
	}()

	client, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: sockPath, Net: "unix"})
	require.NoError(t, err)
	defer client.Close()

	server := <-accepted
	defer server.Close()

	creds, err := PeerCredentials(server)
	require.NoError(t, err)
	assert.Equal(t, uint32(os.Getuid()), creds.UID)
	assert.Equal(t, uint32(os.Getgid()), creds.GID)
}
