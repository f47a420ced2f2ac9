package ulid

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo encodes the ULID as a JSON string in canonical form.
func (id ULID) MarshalJSONTo(enc *jsontext.Encoder) error {
	return enc.WriteToken(jsontext.String(id.String()))
}

// UnmarshalJSONFrom decodes a JSON string holding a 26-character
// encoded ULID, in either letter case.
func (id *ULID) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != '"' {
		return fmt.Errorf("ulid: cannot decode JSON %v token", tok.Kind())
	}
	parsed, err := Parse(tok.String())
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
