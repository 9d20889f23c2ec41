package sift

// Codec provides content-type aware encoding of assembled records.
// The engine forwards records (or record sequences) verbatim; encoder
// options are configured on the codec, never interpreted by the engine.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)
}
