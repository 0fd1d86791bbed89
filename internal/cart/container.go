package cart

import (
	"encoding/binary"
	"fmt"
)

// Container header layout, 16 bytes, little-endian, modeled on the
// fixed-size ROM header convention: magic, version, payload size, then
// reserved padding for future use.
const (
	headerSize = 16
	// Magic is "NCRT" read as a little-endian u32.
	Magic        = 0x5452434E
	FormatVersion uint16 = 1
)

// ErrBadMagic is returned when a cart file's header does not start with
// the expected magic value.
var ErrBadMagic = fmt.Errorf("cart: bad magic (not a cart file)")

// Header is the 16-byte on-disk cart header.
type Header struct {
	Magic       uint32
	Version     uint16
	ProgramSize uint32
}

// Encode packs a cart container: header followed by the raw program
// bytes.
func Encode(program []byte) []byte {
	out := make([]byte, headerSize+len(program))
	binary.LittleEndian.PutUint32(out[0:4], Magic)
	binary.LittleEndian.PutUint16(out[4:6], FormatVersion)
	binary.LittleEndian.PutUint32(out[6:10], uint32(len(program)))
	// out[10:16] is reserved, left zero.
	copy(out[headerSize:], program)
	return out
}

// Decode unpacks a cart container, validating the magic and returning
// the program bytes.
func Decode(data []byte) ([]byte, Header, error) {
	var hdr Header
	if len(data) < headerSize {
		return nil, hdr, fmt.Errorf("cart: file too short for header (%d bytes)", len(data))
	}

	hdr.Magic = binary.LittleEndian.Uint32(data[0:4])
	if hdr.Magic != Magic {
		return nil, hdr, ErrBadMagic
	}
	hdr.Version = binary.LittleEndian.Uint16(data[4:6])
	hdr.ProgramSize = binary.LittleEndian.Uint32(data[6:10])

	end := headerSize + int(hdr.ProgramSize)
	if end > len(data) {
		return nil, hdr, fmt.Errorf("cart: truncated program (want %d bytes, have %d)", hdr.ProgramSize, len(data)-headerSize)
	}

	return data[headerSize:end], hdr, nil
}
