package adapters

import (
	"encoding/binary"
	"testing"
)

func TestWrapPCM(t *testing.T) {
	pcm := make([]byte, 1000)
	wav := WrapPCM(pcm, 22050)

	if len(wav) != wavHeaderSize+len(pcm) {
		t.Fatalf("unexpected length %d", len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != 22050 {
		t.Errorf("unexpected sample rate %d", rate)
	}
	if dataLen := binary.LittleEndian.Uint32(wav[40:44]); dataLen != 1000 {
		t.Errorf("unexpected data length %d", dataLen)
	}
	if riffLen := binary.LittleEndian.Uint32(wav[4:8]); riffLen != 36+1000 {
		t.Errorf("unexpected riff length %d", riffLen)
	}
}
