//go:build linux

package transport

import (
	"net"

	"golang.org/x/sys/unix"

	"github.com/kdbkit/kdbkit/kdberr"
)

// PeerCredentials resolves the effective UID and GID of the process on
// the other end of a Unix domain socket via SO_PEERCRED, the out-of-band
// mechanism the daemon uses to authenticate a session.
func PeerCredentials(conn *net.UnixConn) (Credentials, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return Credentials{}, kdberr.Wrap(kdberr.IoError, "get raw conn for peer credentials")
	}

	var ucred *unix.Ucred
	var sockErr error
	err = raw.Control(func(fd uintptr) {
		ucred, sockErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	})
	if err != nil {
		return Credentials{}, kdberr.Wrap(kdberr.IoError, "control raw conn for peer credentials")
	}
	if sockErr != nil {
		return Credentials{}, kdberr.Wrapf(kdberr.IoError, "SO_PEERCRED: %v", sockErr)
	}
	return Credentials{UID: ucred.Uid, GID: ucred.Gid}, nil
}
