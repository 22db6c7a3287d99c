package capture

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ZXingDecoder decodes retail barcodes (EAN/UPC family) and QR codes from
// frames. Zero value is not usable; construct with NewZXingDecoder.
type ZXingDecoder struct {
	readers []gozxing.Reader
}

// NewZXingDecoder constructs a decoder that tries the EAN/UPC reader first
// and falls back to QR.
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		readers: []gozxing.Reader{
			oned.NewMultiFormatUPCEANReader(nil),
			qrcode.NewQRCodeReader(),
		},
	}
}

// Decode extracts the first readable code from the frame.
func (d *ZXingDecoder) Decode(img image.Image) (string, bool) {
	source := gozxing.NewLuminanceSourceFromImage(img)
	bitmap, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	if err != nil {
		return "", false
	}

	for _, reader := range d.readers {
		result, err := reader.Decode(bitmap, nil)
		if err != nil {
			continue
		}
		if text := result.GetText(); text != "" {
			return text, true
		}
	}

	return "", false
}
