package txpad

import (
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// deterministicReader yields the ChaCha20 keystream for a fixed key and
// nonce, one keystream byte per output byte.
type deterministicReader struct {
	stream *chacha20.Cipher
}

// NewDeterministicReader returns a random source that produces the same
// byte sequence for the same seed. The seed is stretched to a ChaCha20 key
// with BLAKE2b-256 and the keystream is emitted with a fixed all-zero
// nonce.
//
// The output is predictable to anyone who knows the seed, so padding drawn
// from it provides no unlinkability. Use it for reproducible tests and
// debugging only; production callers should keep the crypto/rand default.
func NewDeterministicReader(seed []byte) io.Reader {
	key := blake2b.Sum256(seed)
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSizeX))
	if err != nil {
		// Key and nonce sizes are fixed above; this cannot happen.
		panic("txpad: chacha20 init failed: " + err.Error())
	}
	return &deterministicReader{stream: stream}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	clear(p)
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
