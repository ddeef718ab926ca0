package capture

import (
	"errors"
	"image/jpeg"
	"mime"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/monitor"
)

// MJPEGSource consumes a multipart MJPEG stream, the format most IP and
// USB webcam servers expose over HTTP.
type MJPEGSource struct {
	response *http.Response
	reader   *multipart.Reader
}

func NewMJPEGSource() *MJPEGSource {
	return &MJPEGSource{}
}

func (s *MJPEGSource) Open(device string) error {
	response, err := http.Get(device)
	if err != nil {
		return deviceUnavailable(device, err)
	}
	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return deviceUnavailable(device, errors.New("unexpected status "+response.Status))
	}

	mediaType, params, err := mime.ParseMediaType(response.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/x-mixed-replace" {
		response.Body.Close()
		return deviceUnavailable(device, errors.New("not an mjpeg stream"))
	}

	s.response = response
	s.reader = multipart.NewReader(response.Body, params["boundary"])
	log.Log.Info("capture.mjpeg.Open(): opened stream " + device)
	return nil
}

func (s *MJPEGSource) Read() (monitor.Frame, error) {
	if s.reader == nil {
		return monitor.Frame{}, readFailed(errors.New("stream not open"))
	}

	part, err := s.reader.NextPart()
	if err != nil {
		return monitor.Frame{}, readFailed(err)
	}
	img, err := jpeg.Decode(part)
	part.Close()
	if err != nil {
		return monitor.Frame{}, readFailed(err)
	}
	return toFrame(img, time.Now()), nil
}

func (s *MJPEGSource) Close() error {
	if s.response != nil {
		err := s.response.Body.Close()
		s.response = nil
		s.reader = nil
		return err
	}
	return nil
}
