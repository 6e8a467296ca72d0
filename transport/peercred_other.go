//go:build !linux

package transport

import (
	"net"

	"github.com/kdbkit/kdbkit/kdberr"
)

// PeerCredentials is unsupported outside Linux's SO_PEERCRED mechanism;
// a daemon on another platform needs a different out-of-band credential
// query (e.g. LOCAL_PEERCRED on BSD/Darwin), not yet wired here.
func PeerCredentials(conn *net.UnixConn) (Credentials, error) {
	return Credentials{}, kdberr.Wrap(kdberr.NotImplemented, "peer credentials unsupported on this platform")
}
