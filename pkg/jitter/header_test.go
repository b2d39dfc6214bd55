package jitter

import (
	"testing"

	"github.com/huandu/go-assert"
)

func Test_decodeHeader_basic(t *testing.T) {
	raw := rawHeader(1001, 160000, 0x08)
	seq, ts, flags, ok := decodeHeader(raw)
	assert.Equal(t, ok, true)
	assert.Equal(t, seq, uint16(1001))
	assert.Equal(t, ts, uint32(160000))
	assert.Equal(t, headerPayloadType(flags), uint8(0x08))
}

func Test_decodeHeader_tooShort(t *testing.T) {
	_, _, _, ok := decodeHeader(make([]byte, 11))
	assert.Equal(t, ok, false)
}

func Test_headerHasExtension(t *testing.T) {
	raw := rawHeader(1, 1, 0)
	_, _, flags, _ := decodeHeader(raw)
	assert.Equal(t, headerHasExtension(flags), false)

	raw[0] |= byte(flagExtensionMask >> 8)
	_, _, flags, _ = decodeHeader(raw)
	assert.Equal(t, headerHasExtension(flags), true)
}

func Test_payloadStart_noExtensionNoRedundancy(t *testing.T) {
	raw := rawHeader(1, 1, 0)
	_, _, flags, _ := decodeHeader(raw)
	off, ok := payloadStart(raw, flags)
	assert.Equal(t, ok, true)
	assert.Equal(t, off, headerSize)
}

func Test_payloadStart_extension(t *testing.T) {
	raw := rawHeader(1, 1, 0)
	raw[0] |= byte(flagExtensionMask >> 8)
	// extension profile (2 bytes) + extension length in 32-bit words (2 bytes) = 1 word
	raw = append(raw, 0xBE, 0xDE, 0x00, 0x01, 0xAA, 0xBB, 0xCC, 0xDD)
	_, _, flags, _ := decodeHeader(raw)
	off, ok := payloadStart(raw, flags)
	assert.Equal(t, ok, true)
	assert.Equal(t, off, headerSize+4+4) // 4 byte ext header + 1 word (4 bytes)
}

func Test_payloadStart_dynamicRedundancy(t *testing.T) {
	raw := dynamicRawHeader(1, 1)
	_, _, flags, _ := decodeHeader(raw)
	off, ok := payloadStart(raw, flags)
	assert.Equal(t, ok, true)
	// 12 (header) + 3 (preamble) + 1 (len byte) + 0 (redundant bytes) + 1 (primary pt byte)
	assert.Equal(t, off, headerSize+3+1+0+1)
}

func Test_payloadStart_truncatedExtension(t *testing.T) {
	raw := rawHeader(1, 1, 0)
	raw[0] |= byte(flagExtensionMask >> 8)
	// declare extension but don't provide enough bytes
	_, _, flags, _ := decodeHeader(raw)
	_, ok := payloadStart(raw, flags)
	assert.Equal(t, ok, false)
}
