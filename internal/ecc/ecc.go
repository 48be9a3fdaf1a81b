// Package ecc protects padded messages against byte corruption with
// Reed-Solomon forward error correction.
//
// Data is split into 128-byte chunks and each chunk is encoded into 136
// bytes (8 parity bytes, 6% overhead), which allows up to 4 corrupted
// bytes per encoded chunk to be repaired without retransmission. The final
// chunk is aligned to 128 bytes with PKCS#7 padding before encoding, so
// inputs of any length round-trip exactly.
package ecc

import (
	"errors"

	"github.com/Picocrypt/infectious"
)

// Chunk geometry for the RS(128,136) codec.
const (
	ChunkSize        = 128 // data bytes per chunk
	EncodedChunkSize = 136 // data + parity bytes per encoded chunk
)

// ErrCorrupt is returned by Recover when the input is not a whole number
// of encoded chunks, a chunk has more corrupted bytes than the parity can
// repair, or the recovered alignment padding is inconsistent.
var ErrCorrupt = errors.New("ecc: data corrupted beyond repair")

// Codec is a reusable RS(128,136) encoder/decoder. Construct once and
// share; it is stateless after construction.
type Codec struct {
	fec *infectious.FEC
}

// NewCodec initializes the Reed-Solomon codec.
func NewCodec() (*Codec, error) {
	fec, err := infectious.NewFEC(ChunkSize, EncodedChunkSize)
	if err != nil {
		return nil, err
	}
	return &Codec{fec: fec}, nil
}

// Protect encodes data into a sequence of 136-byte chunks. The output
// length is always a multiple of EncodedChunkSize and the input is not
// modified.
func (c *Codec) Protect(data []byte) []byte {
	aligned := alignChunks(data)
	out := make([]byte, 0, len(aligned)/ChunkSize*EncodedChunkSize)
	for off := 0; off < len(aligned); off += ChunkSize {
		out = c.encodeChunk(out, aligned[off:off+ChunkSize])
	}
	return out
}

// Recover decodes data produced by Protect, repairing up to 4 corrupted
// bytes per encoded chunk.
func (c *Codec) Recover(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%EncodedChunkSize != 0 {
		return nil, ErrCorrupt
	}
	out := make([]byte, 0, len(data)/EncodedChunkSize*ChunkSize)
	for off := 0; off < len(data); off += EncodedChunkSize {
		chunk, err := c.decodeChunk(data[off : off+EncodedChunkSize])
		if err != nil {
			return nil, ErrCorrupt
		}
		out = append(out, chunk...)
	}
	return unalignChunks(out)
}

func (c *Codec) encodeChunk(dst, chunk []byte) []byte {
	res := make([]byte, EncodedChunkSize)
	if err := c.fec.Encode(chunk, func(s infectious.Share) {
		res[s.Number] = s.Data[0]
	}); err != nil {
		// Chunk size is fixed by the caller; this cannot happen.
		panic("ecc: encode failed: " + err.Error())
	}
	return append(dst, res...)
}

func (c *Codec) decodeChunk(chunk []byte) ([]byte, error) {
	shares := make([]infectious.Share, EncodedChunkSize)
	for i := range shares {
		shares[i].Number = i
		shares[i].Data = []byte{chunk[i]}
	}
	return c.fec.Decode(nil, shares)
}

// alignChunks pads data to a multiple of ChunkSize with PKCS#7 bytes.
// Padding is always appended, a full extra chunk when data is already
// aligned, so unalignChunks never has to guess.
func alignChunks(data []byte) []byte {
	padLen := ChunkSize - len(data)%ChunkSize
	aligned := make([]byte, len(data)+padLen)
	copy(aligned, data)
	for i := len(data); i < len(aligned); i++ {
		aligned[i] = byte(padLen)
	}
	return aligned
}

// unalignChunks strips the PKCS#7 alignment added by alignChunks. Every
// padding byte must carry the pad length; after a successful Reed-Solomon
// decode an inconsistency here means the data was not produced by Protect.
func unalignChunks(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrCorrupt
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > ChunkSize || padLen > len(data) {
		return nil, ErrCorrupt
	}
	for _, v := range data[len(data)-padLen:] {
		if v != byte(padLen) {
			return nil, ErrCorrupt
		}
	}
	return data[:len(data)-padLen], nil
}
