package proto

import "encoding/binary"

// KeyPayload encodes a MsgKey payload.
//
// Layout (little-endian):
//   - u16: hal.KeyCode (0 when the key is a plain rune)
//   - u32: rune
func KeyPayload(code uint16, r rune) []byte {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint16(buf[0:2], code)
	binary.LittleEndian.PutUint32(buf[2:6], uint32(r))
	return buf
}

// DecodeKeyPayload decodes a KeyPayload.
func DecodeKeyPayload(b []byte) (code uint16, r rune, ok bool) {
	if len(b) != 6 {
		return 0, 0, false
	}
	return binary.LittleEndian.Uint16(b[0:2]), rune(binary.LittleEndian.Uint32(b[2:6])), true
}

// TapPayload encodes a MsgTap payload: a press at framebuffer coordinates.
//
// Layout (little-endian):
//   - i16: x
//   - i16: y
func TapPayload(x, y int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(int16(x)))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(int16(y)))
	return buf
}

// DecodeTapPayload decodes a TapPayload.
func DecodeTapPayload(b []byte) (x, y int, ok bool) {
	if len(b) != 4 {
		return 0, 0, false
	}
	x = int(int16(binary.LittleEndian.Uint16(b[0:2])))
	y = int(int16(binary.LittleEndian.Uint16(b[2:4])))
	return x, y, true
}
