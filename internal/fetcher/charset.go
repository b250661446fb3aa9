package fetcher

import (
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Decode converts body to UTF-8. The encoding comes from the Content-Type
// header or a BOM when present. Otherwise valid UTF-8 is kept as is and only
// invalid bodies are decoded with the encoding sniffed from the first 1024 bytes.
func Decode(body []byte, contentType string) ([]byte, error) {
	peek := body
	if len(peek) > 1024 {
		peek = peek[:1024]
	}
	e, name, certain := charset.DetermineEncoding(peek, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(body)) {
		return body, nil
	}
	out, _, err := transform.Bytes(e.NewDecoder(), body)
	if err != nil {
		return nil, err
	}
	return out, nil
}
