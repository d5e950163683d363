package record

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Encoding names the character encoding an input was read as.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "iso-8859-1"
)

// ErrUnreadable is returned for input that cannot be census text at all.
var ErrUnreadable = errors.New("input is not a text file")

// Decoded is the text form of a submitted file.
type Decoded struct {
	Text     string
	Encoding Encoding
	HadBOM   bool
	Size     int
	SHA256   string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode turns raw file bytes into NFC-normalised text. UTF-8 is expected;
// input that is not valid UTF-8 is read as ISO-8859-1, which is what older
// school management systems still export. A NUL byte marks the input as
// binary and unreadable.
func Decode(content []byte) (Decoded, error) {
	sum := sha256.Sum256(content)
	d := Decoded{Size: len(content), SHA256: hex.EncodeToString(sum[:]), Encoding: EncodingUTF8}

	if bytes.IndexByte(content, 0) >= 0 {
		return d, ErrUnreadable
	}

	body := content
	if bytes.HasPrefix(body, utf8BOM) {
		d.HadBOM = true
		body = body[len(utf8BOM):]
	}

	if !utf8.Valid(body) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
		if err != nil {
			return d, fmt.Errorf("decode latin-1: %w", err)
		}
		body = decoded
		d.Encoding = EncodingLatin1
	}

	d.Text = norm.NFC.String(string(body))
	return d, nil
}
