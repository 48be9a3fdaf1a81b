package txpad_test

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"testing"

	"github.com/Picocrypt/serpent"

	"txpad"
)

// TestSerpentCBCRoundTrip drives the padded output through a real block
// cipher: pad to Serpent's 16-byte block size, encrypt with CBC, decrypt,
// unpad, and compare. This is the consumption pattern the scheme exists
// for, since CBC requires block-aligned input.
func TestSerpentCBCRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	block, err := serpent.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	blockSize := block.BlockSize()

	iv := make([]byte, blockSize)
	if _, err := rand.Read(iv); err != nil {
		t.Fatal(err)
	}

	scheme, err := txpad.New(blockSize)
	if err != nil {
		t.Fatal(err)
	}

	for _, message := range [][]byte{
		{},
		[]byte("a"),
		[]byte("attack at dawn"),
		bytes.Repeat([]byte{0x5A}, 3*blockSize),
		bytes.Repeat([]byte{0x00}, 100),
	} {
		pos := len(message)
		buf := make([]byte, scheme.PaddedSize(pos))
		copy(buf, message)
		padded, err := scheme.Pad(buf, pos, blockSize)
		if err != nil {
			t.Fatalf("Pad(%d bytes) failed: %v", pos, err)
		}

		ciphertext := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

		plaintext := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

		msg, err := scheme.Unpad(plaintext)
		if err != nil {
			t.Fatalf("Unpad after decrypt failed for %d bytes: %v", pos, err)
		}
		if !bytes.Equal(msg, message) {
			t.Errorf("round trip through Serpent-CBC failed for %d bytes", pos)
		}
	}
}
