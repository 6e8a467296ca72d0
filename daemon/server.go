package daemon

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kdbkit/kdbkit/protocol"
	"github.com/kdbkit/kdbkit/transport"
)

// Server dispatches framed requests to a Backend, one goroutine per
// accepted connection: no shared mutable state between sessions beyond
// the Backend itself.
type Server struct {
	Backend Backend
	Logger  zerolog.Logger
	Metrics *Metrics
}

// NewServer constructs a Server. metrics may be nil to disable
// instrumentation.
func NewServer(backend Backend, logger zerolog.Logger, metrics *Metrics) *Server {
	return &Server{Backend: backend, Logger: logger, Metrics: metrics}
}

// Serve accepts connections from ln until ctx is cancelled or Accept
// returns a permanent error, handling each on its own goroutine.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.handleConn(ctx, conn)
	}
}

// handleConn drives one session's state machine: resolve credentials,
// then repeatedly read a request, dispatch it, and send the reply,
// until CLOSE is processed or the transport fails.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	sessionID := uuid.New()
	log := s.Logger.With().Str("session", sessionID.String()).Logger()

	state := stateAuthenticating
	if unixConn, ok := conn.(*net.UnixConn); ok {
		creds, err := transport.PeerCredentials(unixConn)
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve peer credentials")
			return
		}
		log = log.With().Uint32("uid", creds.UID).Uint32("gid", creds.GID).Logger()
	}
	state = stateReady
	log.Debug().Str("state", state.String()).Msg("session ready")

	for {
		req, err := protocol.ReadMessage(conn)
		if err != nil {
			state = stateClosed
			if !errors.Is(err, io.EOF) {
				log.Error().Err(err).Str("state", state.String()).Msg("read failed, closing session")
			}
			return
		}

		state = stateHandling
		start := time.Now()
		reply := s.dispatch(ctx, req)
		status, _, _ := protocol.DecodeReplyStatus(reply.Payload)
		s.Metrics.Observe(req.Procedure.String(), status.String(), time.Since(start))
		log.Debug().Str("procedure", req.Procedure.String()).Str("status", status.String()).Dur("took", time.Since(start)).Msg("handled request")

		if err := protocol.WriteMessage(conn, reply); err != nil {
			state = stateClosed
			log.Error().Err(err).Str("state", state.String()).Msg("write failed, closing session")
			return
		}

		if req.Procedure == protocol.CLOSE {
			state = stateClosing
			log.Debug().Str("state", state.String()).Msg("closing session")
			state = stateClosed
			return
		}
		state = stateReady
	}
}

// dispatch decodes req's arguments, invokes the corresponding Backend
// operation, and builds the reply. An unrecognised procedure yields
// StatusProtocolError; a recognised-but-reserved one yields
// StatusNotImplemented. Either way the connection stays open. The session
// ends on a processed CLOSE or on any ReadMessage error: a transport
// failure, or a frame it rejects (bad magic, oversized payload length),
// which closes the connection without a reply.
func (s *Server) dispatch(ctx context.Context, req *protocol.Message) *protocol.Message {
	if !req.Procedure.Known() {
		return protocol.NewReply(req.Procedure, protocol.StatusProtocolError, nil)
	}

	switch req.Procedure {
	case protocol.OPEN:
		err := s.Backend.Open(ctx)
		return protocol.NewReply(protocol.OPEN, protocol.StatusFor(err), nil)

	case protocol.CLOSE:
		err := s.Backend.Close(ctx)
		return protocol.NewReply(protocol.CLOSE, protocol.StatusFor(err), nil)

	case protocol.GETKEY:
		keyIn, err := protocol.DecodeKeyArg(req.Payload)
		if err != nil {
			return protocol.NewReply(protocol.GETKEY, protocol.StatusProtocolError, nil)
		}
		out, err := s.Backend.GetKey(ctx, keyIn)
		if err != nil {
			return protocol.NewReply(protocol.GETKEY, protocol.StatusFor(err), nil)
		}
		return protocol.NewReply(protocol.GETKEY, protocol.StatusOK, protocol.EncodeKeyReply(out))

	case protocol.GETCHILD:
		parent, err := protocol.DecodeKeyArg(req.Payload)
		if err != nil {
			return protocol.NewReply(protocol.GETCHILD, protocol.StatusProtocolError, nil)
		}
		children, err := s.Backend.GetChildren(ctx, parent)
		if err != nil {
			return protocol.NewReply(protocol.GETCHILD, protocol.StatusFor(err), nil)
		}
		return protocol.NewReply(protocol.GETCHILD, protocol.StatusOK, protocol.EncodeKeySetReply(children))

	default:
		// STATKEY, SETKEY, SETKEYS, RENAME, REMOVEKEY, MONITORKEY,
		// MONITORKEYS: reserved procedure codes this daemon decodes
		// without crashing and answers NotImplemented.
		return protocol.NewReply(req.Procedure, protocol.StatusNotImplemented, nil)
	}
}
