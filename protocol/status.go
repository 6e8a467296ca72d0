package protocol

import (
	"errors"

	"github.com/kdbkit/kdbkit/kdberr"
)

// Status is a reply's result code: zero for success, negative for each
// kind in kdberr's taxonomy.
type Status int32

// StatusOK indicates the request succeeded and the reply carries a
// result payload.
const StatusOK Status = 0

// The negative status codes a reply may carry, one per kdberr taxonomy
// entry; StatusNotImplemented answers a reserved-but-unimplemented
// procedure. The values are this package's own sequence -1 to -8, not
// errno numbers.
const (
	StatusInvalidArgument Status = -(iota + 1)
	StatusTypeMismatch
	StatusBusy
	StatusNotFound
	StatusIoError
	StatusProtocolError
	StatusBackendError
	StatusNotImplemented
)

var statusNames = map[Status]string{
	StatusOK:              "OK",
	StatusInvalidArgument: "INVALID_ARGUMENT",
	StatusTypeMismatch:    "TYPE_MISMATCH",
	StatusBusy:            "BUSY",
	StatusNotFound:        "NOT_FOUND",
	StatusIoError:         "IO_ERROR",
	StatusProtocolError:   "PROTOCOL_ERROR",
	StatusBackendError:    "BACKEND_ERROR",
	StatusNotImplemented:  "NOT_IMPLEMENTED",
}

// String returns the status's symbolic name, for logging and metrics
// labels.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// StatusFor maps a kdberr sentinel (or a wrapped occurrence of one) to
// its protocol status code. An unrecognised error maps to
// StatusBackendError, since it must have originated from the backend
// rather than from this module's own validated operations.
func StatusFor(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, kdberr.InvalidArgument):
		return StatusInvalidArgument
	case errors.Is(err, kdberr.TypeMismatch):
		return StatusTypeMismatch
	case errors.Is(err, kdberr.Busy):
		return StatusBusy
	case errors.Is(err, kdberr.NotFound):
		return StatusNotFound
	case errors.Is(err, kdberr.IoError):
		return StatusIoError
	case errors.Is(err, kdberr.ProtocolError):
		return StatusProtocolError
	case errors.Is(err, kdberr.NotImplemented):
		return StatusNotImplemented
	default:
		return StatusBackendError
	}
}
