// protocol_codec.go - encode/decode the fixed-size packed records
//
// Grounded on runtime_ipc.go's request/response framing, reworked from a
// JSON stream protocol to encoding/binary packed little-endian structs per
// spec.md §6's wire format: "all message bodies are C-layout packed,
// little-endian". Opcode is always the first 32-bit word.

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// opcodeSize is the width of the leading opcode word on the wire.
const opcodeSize = 4

// decodeOpcode reads the opcode word without consuming the rest of buf.
// Messages shorter than opcodeSize are ClientMalformed.
func decodeOpcode(buf []byte) (Opcode, error) {
	if len(buf) < opcodeSize {
		return 0, newErr(ClientMalformed, "decode_opcode", "message shorter than opcode", nil)
	}
	return Opcode(binary.LittleEndian.Uint32(buf[:opcodeSize])), nil
}

// encodeMessage writes op followed by body's packed little-endian
// representation.
func encodeMessage(op Opcode, body any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, op); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeBody decodes buf's payload (opcode already stripped) into out,
// which must be a pointer to one of the fixed-size message structs.
func decodeBody(buf []byte, out any) error {
	r := bytes.NewReader(buf)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return newErr(ClientMalformed, "decode_body", fmt.Sprintf("%T", out), err)
	}
	return nil
}

// DecodeRequest parses an inbound message: opcode plus whichever concrete
// body type matches it. Unknown opcodes and short/truncated bodies are
// ClientMalformed (spec.md §7) rather than returned as a typed error; the
// caller (server_handlers.go) logs and drops.
func DecodeRequest(buf []byte) (Opcode, any, error) {
	op, err := decodeOpcode(buf)
	if err != nil {
		return 0, nil, err
	}
	body := buf[opcodeSize:]

	switch op {
	case OpCreateWindow:
		var m CreateWindowMsg
		if err := decodeBody(body, &m); err != nil {
			return op, nil, err
		}
		return op, m, nil
	case OpDestroyWindow, OpCommitBuffer, OpMinimizeWindow, OpRestoreWindow:
		var m WindowIDMsg
		if err := decodeBody(body, &m); err != nil {
			return op, nil, err
		}
		return op, m, nil
	case OpRegisterTaskbar:
		var m RegisterTaskbarMsg
		if err := decodeBody(body, &m); err != nil {
			return op, nil, err
		}
		return op, m, nil
	case OpInputUpdate:
		var m InputUpdateMsg
		if err := decodeBody(body, &m); err != nil {
			return op, nil, err
		}
		return op, m, nil
	default:
		return op, nil, newErr(ClientMalformed, "decode_request", "unknown opcode", nil)
	}
}

// EncodeWindowCreated encodes the WINDOW_CREATED reply.
func EncodeWindowCreated(m WindowCreatedMsg) ([]byte, error) {
	return encodeMessage(OpWindowCreated, m)
}

// EncodeEventInput encodes an EVENT_INPUT message to a client.
func EncodeEventInput(m EventInputMsg) ([]byte, error) {
	return encodeMessage(OpEventInput, m)
}

// EncodeLifecycleEvent encodes an EVENT_WINDOW_LIFECYCLE message to the
// taskbar.
func EncodeLifecycleEvent(m EventWindowLifecycleMsg) ([]byte, error) {
	return encodeMessage(OpEventWindowLifecycle, m)
}
