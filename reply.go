package kvkit

import "encoding/binary"

// Status codes carried in the leading 4 bytes of an encoded Reply. Zero and
// above is success; the negative space is partitioned per command family.
const (
	StatusOK int32 = 0

	StatusNilCommand     int32 = -1
	StatusUnknownCommand int32 = -3
	StatusBadArgument    int32 = -4

	StatusSketchExists   int32 = -101
	StatusSketchNotFound int32 = -102

	StatusUnknown int32 = -999
)

// Reply is the result of a dispatched command: a signed status code and an
// optional human-readable message.
type Reply struct {
	Status  int32
	Message string
}

// Encode renders the reply as a 4-byte big-endian status code followed by
// the message bytes.
func (r Reply) Encode() []byte {
	out := make([]byte, 4+len(r.Message))
	binary.BigEndian.PutUint32(out, uint32(r.Status))
	copy(out[4:], r.Message)
	return out
}

// DecodeReply parses an encoded reply frame. Frames shorter than the status
// code are rejected with ErrShortReply.
func DecodeReply(buf []byte) (Reply, error) {
	if len(buf) < 4 {
		return Reply{}, ErrShortReply
	}

	return Reply{
		Status:  int32(binary.BigEndian.Uint32(buf)),
		Message: string(buf[4:]),
	}, nil
}

func ok(message string) Reply {
	return Reply{Status: StatusOK, Message: message}
}

func fail(status int32, err error) Reply {
	return Reply{Status: status, Message: err.Error()}
}
