package protocol

import (
	"encoding/binary"
	"io"

	"github.com/kdbkit/kdbkit/kdberr"
)

// Magic identifies the start of a frame, guarding against a desynced
// stream being silently misparsed as a message.
const Magic uint32 = 0x4b444231 // "KDB1"

// MaxPayload bounds a single frame's declared payload length, so a
// corrupt or hostile length prefix cannot force an unbounded allocation.
const MaxPayload = 64 << 20

// MessageType distinguishes a request from a reply at the frame level.
type MessageType uint32

const (
	TypeRequest MessageType = 1
	TypeReply   MessageType = 2
)

// headerSize is magic + type + procedure + payload_length, four u32
// fields.
const headerSize = 4 * 4

// Message is one framed request or reply: a type, a procedure, and a
// payload of codec-encoded arguments (request) or a status plus result
// payload (reply, see NewReply/DecodeReplyStatus).
type Message struct {
	Type      MessageType
	Procedure Procedure
	Payload   []byte
}

// WriteMessage writes m's frame to w: the fixed header, then the
// payload bytes.
func WriteMessage(w io.Writer, m *Message) error {
	var header [headerSize]byte
	binary.LittleEndian.PutUint32(header[0:4], Magic)
	binary.LittleEndian.PutUint32(header[4:8], uint32(m.Type))
	binary.LittleEndian.PutUint32(header[8:12], uint32(m.Procedure))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(m.Payload)))
	if _, err := w.Write(header[:]); err != nil {
		return kdberr.Wrap(kdberr.IoError, "write message header")
	}
	if len(m.Payload) == 0 {
		return nil
	}
	if _, err := w.Write(m.Payload); err != nil {
		return kdberr.Wrap(kdberr.IoError, "write message payload")
	}
	return nil
}

// ReadMessage reads one frame from r: the fixed header first, then
// exactly payload_length bytes — never a single variable-length read,
// matching the original daemon's two-phase protocolReadMessage. Returns
// ErrBadMagic if the header's magic does not match, or
// kdberr.ProtocolError if the declared payload length exceeds
// MaxPayload.
func ReadMessage(r io.Reader) (*Message, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, kdberr.Wrap(kdberr.IoError, "read message header")
	}
	magic := binary.LittleEndian.Uint32(header[0:4])
	if magic != Magic {
		return nil, ErrBadMagic
	}
	m := &Message{
		Type:      MessageType(binary.LittleEndian.Uint32(header[4:8])),
		Procedure: Procedure(binary.LittleEndian.Uint32(header[8:12])),
	}
	length := binary.LittleEndian.Uint32(header[12:16])
	if length > MaxPayload {
		return nil, kdberr.Wrap(kdberr.ProtocolError, "payload length exceeds limit")
	}
	if length > 0 {
		m.Payload = make([]byte, length)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, kdberr.Wrap(kdberr.IoError, "read message payload")
		}
	}
	return m, nil
}
