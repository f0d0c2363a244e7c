package domain

// UploadedFile is a client-submitted file staged on the local filesystem.
// It is owned by the request that staged it and removed when that request
// finishes, whatever the outcome.
type UploadedFile struct {
	Path         string
	OriginalName string
	MimeType     string
	Size         int64
	Extension    string
}

// Direction selects which way a document conversion runs.
type Direction string

const (
	DocxToPDF Direction = "docx-to-pdf"
	PDFToDocx Direction = "pdf-to-docx"
)

type AudioFormat string

const (
	FormatMP3 AudioFormat = "mp3"
	FormatAAC AudioFormat = "aac"
	FormatWAV AudioFormat = "wav"
	FormatOGG AudioFormat = "ogg"
)

// AudioOutputFormats is the allow-list of formats the audio strategy
// will produce. Requests naming anything else are rejected before the
// transcoder process is launched.
var AudioOutputFormats = map[AudioFormat]bool{
	FormatMP3: true,
	FormatAAC: true,
	FormatWAV: true,
	FormatOGG: true,
}

// AudioInputMimeTypes is the allow-list of container/codec types accepted
// as transcoding input.
var AudioInputMimeTypes = map[string]bool{
	"audio/mpeg":   true,
	"audio/mp3":    true,
	"audio/wav":    true,
	"audio/x-wav":  true,
	"audio/wave":   true,
	"audio/ogg":    true,
	"audio/aac":    true,
	"audio/flac":   true,
	"audio/x-flac": true,
	"audio/mp4":    true,
	"audio/x-m4a":  true,
	"audio/webm":   true,
}

// ImageMimeTypes is the allow-list accepted by the image compression strategy.
var ImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

// AudioMimeType maps a target format to the MIME type reported in the
// response envelope.
func AudioMimeType(format AudioFormat) string {
	if format == FormatMP3 {
		return "audio/mpeg"
	}
	return "audio/" + string(format)
}

const (
	DefaultMaxUploadSize = 25 << 20
	DefaultBitrate       = "192k"
	DefaultJPEGQuality   = 70
	DefaultQRSize        = 300
	QRFileName           = "qr-code.png"
)

// DocumentResult is the output of one document conversion.
type DocumentResult struct {
	FileName string
	MimeType string
	Data     []byte
}

// ImageResult is the output of one image compression.
type ImageResult struct {
	FileName         string
	MimeType         string
	Data             []byte
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
}

// QRResult is the output of one QR generation.
type QRResult struct {
	FileName    string
	MimeType    string
	Data        []byte
	OriginalURL string
}

// AudioResult is the output of one audio transcoding.
type AudioResult struct {
	FileName     string
	MimeType     string
	Data         []byte
	TargetFormat AudioFormat
	Bitrate      string
	Size         int64
}
