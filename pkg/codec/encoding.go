package codec

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// inputDecoder returns the decoder that converts the named encoding to UTF-8.
// The empty name sniffs a byte order mark and falls back to UTF-8.
func inputDecoder(name string) (transform.Transformer, error) {
	var dec *encoding.Decoder
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "utf-8", "utf8":
		dec = unicode.UTF8BOM.NewDecoder()
	case "utf-16", "utf16":
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case "utf-16le", "utf16le":
		dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case "utf-16be", "utf16be":
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case "latin1", "latin-1", "iso-8859-1":
		dec = charmap.ISO8859_1.NewDecoder()
	case "windows-1252", "cp1252":
		dec = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return dec, nil
}

// toUTF8 wraps r so that it yields UTF-8 regardless of the input encoding.
func toUTF8(r io.Reader, name string) (io.Reader, error) {
	dec, err := inputDecoder(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, dec), nil
}
