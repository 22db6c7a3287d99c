package capture

import (
	"context"
	"image"
	"image/jpeg"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
)

// MJPEGSource reads frames from a multipart MJPEG camera stream, the format
// served by most IP webcams and streaming apps.
type MJPEGSource struct {
	resp   *http.Response
	reader *multipart.Reader
}

// OpenMJPEG connects to an MJPEG stream URL and prepares to read frames.
func OpenMJPEG(ctx context.Context, httpClient *http.Client, streamURL string) (*MJPEGSource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create stream request")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to stream")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()

		return nil, errors.Errorf("stream returned status %d", resp.StatusCode)
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		_ = resp.Body.Close()

		return nil, errors.Wrap(err, "could not parse stream content type")
	}
	if !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		_ = resp.Body.Close()

		return nil, errors.Errorf("not an mjpeg stream: %s", mediaType)
	}

	return &MJPEGSource{
		resp:   resp,
		reader: multipart.NewReader(resp.Body, params["boundary"]),
	}, nil
}

// Next reads and decodes the next JPEG frame from the stream.
func (s *MJPEGSource) Next(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	part, err := s.reader.NextPart()
	if err != nil {
		return nil, errors.Wrap(err, "could not read next frame part")
	}
	defer func() {
		_ = part.Close()
	}()

	frame, err := jpeg.Decode(part)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode frame")
	}

	return frame, nil
}

// Close terminates the stream connection.
func (s *MJPEGSource) Close() error {
	return s.resp.Body.Close() //nolint: wrapcheck
}
