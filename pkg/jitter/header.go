package jitter

import "encoding/binary"

// Fixed RTP header layout, RFC 3550 §5.1. All multi-byte fields are
// network byte order.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|X|  CC   |M|     PT      |       sequence number        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           timestamp                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           synchronization source (SSRC) identifier           |
//	+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
const (
	headerSize = 12

	flagVersionMask   uint16 = 0xC000
	flagPaddingMask   uint16 = 0x2000
	flagExtensionMask uint16 = 0x1000
	flagCSRCCountMask uint16 = 0x0F00
	flagMarkerMask    uint16 = 0x0080
	flagPayloadMask   uint16 = 0x007F

	// dynamicPayloadType carries a redundant copy of the previous
	// packet's payload ahead of the primary payload, for single-packet
	// loss recovery.
	dynamicPayloadType uint8 = 0x79
)

func headerFlags(raw []byte) uint16 {
	return binary.BigEndian.Uint16(raw[0:2])
}

func headerSeq(raw []byte) uint16 {
	return binary.BigEndian.Uint16(raw[2:4])
}

func headerTimestamp(raw []byte) uint32 {
	return binary.BigEndian.Uint32(raw[4:8])
}

func headerPayloadType(flags uint16) uint8 {
	return uint8(flags & flagPayloadMask)
}

func headerHasExtension(flags uint16) bool {
	return flags&flagExtensionMask != 0
}

// decodeHeader extracts sequence, timestamp and flags from the fixed
// 12-byte header. Packets shorter than 12 bytes are BadPacket.
func decodeHeader(raw []byte) (seq uint16, ts uint32, flags uint16, ok bool) {
	if len(raw) < headerSize {
		return 0, 0, 0, false
	}
	flags = headerFlags(raw)
	seq = headerSeq(raw)
	ts = headerTimestamp(raw)
	return seq, ts, flags, true
}

// payloadStart computes the byte offset of the payload within raw,
// honoring an optional extension header and, for dynamicPayloadType, a
// redundancy preamble (3 bytes, a length byte, that many bytes of
// redundant payload, and one byte of primary payload type).
//
// CSRC list length (flags & flagCSRCCountMask) is deliberately not
// accounted for here; extension and redundancy parsing assume no CSRCs
// are present.
func payloadStart(raw []byte, flags uint16) (int, bool) {
	offset := headerSize

	if headerHasExtension(flags) {
		if len(raw) < offset+4 {
			return 0, false
		}
		extLenWords := int(binary.BigEndian.Uint16(raw[offset+2 : offset+4]))
		offset += 4 + extLenWords*4
	}

	if headerPayloadType(flags) == dynamicPayloadType {
		if offset+4 > len(raw) {
			return 0, false
		}
		offset += 3 // redundancy preamble
		redundantLen := int(raw[offset])
		offset++
		offset += redundantLen
		offset++ // primary payload type byte
	}

	if offset > len(raw) {
		return 0, false
	}
	return offset, true
}
