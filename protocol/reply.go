package protocol

import (
	"bytes"

	"github.com/kdbkit/kdbkit/wire"
)

// NewRequest builds a request Message for procedure with the given
// already-encoded argument payload (see the Encode*Arg helpers). args
// may be nil for OPEN/CLOSE, which take no arguments.
func NewRequest(procedure Procedure, args []byte) *Message {
	return &Message{Type: TypeRequest, Procedure: procedure, Payload: args}
}

// NewReply builds a reply Message: status, then — only on success — the
// result payload (see the Encode*Reply helpers). A failed request
// carries no result payload; the status alone tells the caller why.
func NewReply(procedure Procedure, status Status, result []byte) *Message {
	var w bytes.Buffer
	wire.EncodeI32(&w, int32(status))
	if status == StatusOK {
		w.Write(result)
	}
	return &Message{Type: TypeReply, Procedure: procedure, Payload: w.Bytes()}
}

// DecodeReplyStatus reads the status prefix from a reply's payload and
// returns it along with the remaining bytes (the result payload, empty
// on failure).
func DecodeReplyStatus(payload []byte) (Status, []byte, error) {
	r := wire.NewReader(payload)
	s, err := r.I32()
	if err != nil {
		return 0, nil, err
	}
	return Status(s), payload[4:], nil
}
