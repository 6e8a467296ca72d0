// Package transport resolves the out-of-band credential mechanism a
// session uses to authenticate: on a local Unix socket, a
// peer-credentials query giving the daemon the connecting client's
// effective UID and GID.
package transport
