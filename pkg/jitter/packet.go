package jitter

import "github.com/pion/rtp"

// Packet is an owned record wrapping a raw RTP datagram with
// caller-annotated metadata. It is created by the producer before Push;
// ownership transfers into the buffer and is handed back at Pop (or
// dropped on overflow/reset).
type Packet struct {
	// RawBytes is the RTP datagram, at least the 12-byte fixed header.
	RawBytes []byte
	// PayloadMs is the caller-declared duration this packet represents,
	// e.g. 20 for a 20ms PCMU frame.
	PayloadMs int64
	// PayloadType is the 7-bit RTP payload type, decoded from RawBytes.
	PayloadType uint8
	// UseRedundantPayload is set by the buffer when this carrier is
	// being delivered for redundancy recovery (see Pop's dynamic
	// payload case).
	UseRedundantPayload bool

	seq     uint16
	ts      uint32
	decoded bool
}

func (p *Packet) decode() bool {
	if p.decoded {
		return true
	}
	seq, ts, flags, ok := decodeHeader(p.RawBytes)
	if !ok {
		return false
	}
	p.seq = seq
	p.ts = ts
	p.PayloadType = headerPayloadType(flags)
	p.decoded = true
	return true
}

// SequenceNumber returns the decoded RTP sequence number. It reads zero
// until the header has been decoded by Push, PayloadStart or
// NewPacketFromRTP.
func (p *Packet) SequenceNumber() uint16 { return p.seq }

// Timestamp returns the decoded RTP media-clock timestamp.
func (p *Packet) Timestamp() uint32 { return p.ts }

// PayloadStart returns the byte offset of the payload within RawBytes,
// honoring an extension header and, for the dynamic payload type, the
// redundancy preamble. CSRC list length is not accounted for.
func (p *Packet) PayloadStart() (int, bool) {
	if !p.decode() {
		return 0, false
	}
	return payloadStart(p.RawBytes, headerFlags(p.RawBytes))
}

// NewPacketFromRTP marshals a pion/rtp packet and wraps the resulting
// bytes as a Packet, for producers that already assemble frames with
// github.com/pion/rtp rather than handing over raw bytes directly.
func NewPacketFromRTP(pkt *rtp.Packet, payloadMs int64) (*Packet, error) {
	raw, err := pkt.Marshal()
	if err != nil {
		return nil, err
	}
	p := &Packet{RawBytes: raw, PayloadMs: payloadMs}
	p.decode()
	return p, nil
}
