package jitter

import "encoding/binary"

const testSampleRateHz = 8000

// rawHeader builds a minimal 12-byte RTP header (version 2, no padding,
// no extension, no CSRC) with the given sequence, timestamp and payload
// type.
func rawHeader(seq uint16, ts uint32, pt uint8) []byte {
	raw := make([]byte, headerSize)
	flags := uint16(0x8000) | uint16(pt)&flagPayloadMask
	binary.BigEndian.PutUint16(raw[0:2], flags)
	binary.BigEndian.PutUint16(raw[2:4], seq)
	binary.BigEndian.PutUint32(raw[4:8], ts)
	binary.BigEndian.PutUint32(raw[8:12], 0xCAFEBABE)
	return raw
}

// dynamicRawHeader builds a header whose payload carries a redundancy
// preamble: 3 filler bytes, a zero-length byte (no redundant payload
// bytes), and one primary-payload-type byte.
func dynamicRawHeader(seq uint16, ts uint32) []byte {
	raw := rawHeader(seq, ts, dynamicPayloadType)
	return append(raw, 0x00, 0x00, 0x00, 0x00, 0x00)
}

// testPacket returns a Packet carrying a 20ms payload at the given
// sequence number, PCMU-style payload type 0.
func testPacket(seq uint16) *Packet {
	return &Packet{RawBytes: rawHeader(seq, uint32(seq)*160, 0), PayloadMs: 20}
}

// testPacketMs is testPacket with a caller-chosen payload duration, for
// scenarios that need fine control over accumulated depth.
func testPacketMs(seq uint16, payloadMs int64) *Packet {
	return &Packet{RawBytes: rawHeader(seq, uint32(seq)*160, 0), PayloadMs: payloadMs}
}

// testPacketPT returns a Packet with an explicit payload type encoded in
// the header.
func testPacketPT(seq uint16, pt uint8) *Packet {
	return &Packet{RawBytes: rawHeader(seq, uint32(seq)*160, pt), PayloadMs: 20}
}

// testDynamicPacket returns a Packet whose header declares the dynamic
// payload type and carries a zero-length redundancy preamble.
func testDynamicPacket(seq uint16) *Packet {
	return &Packet{RawBytes: dynamicRawHeader(seq, uint32(seq)*160), PayloadMs: 20}
}
