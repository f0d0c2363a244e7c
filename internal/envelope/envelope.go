// Package envelope serializes binary conversion results into the JSON-safe
// shape returned to clients: a base64 data URL plus file metadata.
package envelope

import "encoding/base64"

// Envelope is the common part of every successful conversion response.
// Strategy-specific metadata is added by embedding it in the endpoint's
// response type.
type Envelope struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	DataURL  string `json:"dataUrl"`
}

// Encode builds an envelope for the given payload. It is pure and total:
// any byte slice, including an empty one, produces a decodable data URL.
func Encode(data []byte, mimeType, fileName string) Envelope {
	return Envelope{
		FileName: fileName,
		MimeType: mimeType,
		DataURL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}
}
