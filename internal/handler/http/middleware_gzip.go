package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZipRequest inflates request bodies sent with Content-Encoding: gzip.
// A body that is not valid gzip is answered with an INVALID_REQUEST
// envelope before the route runs. Responses are compressed separately by
// chi's Compress middleware.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && hasToken(r.Header.Get("Content-Encoding"), "gzip") {
			body, err := gzipRequestBody(r.Body)
			if err != nil {
				utils.WriteFailure(w, r, http.StatusBadRequest, models.CodeInvalidRequest, "invalid gzip data")
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		next.ServeHTTP(w, r)
	})
}

func gzipRequestBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}

	return &pooledGZipReader{Reader: zr, src: body}, nil
}

// pooledGZipReader returns its reader to the pool once closed.
type pooledGZipReader struct {
	*gzip.Reader
	src    io.Closer
	closed bool
}

func (p *pooledGZipReader) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.Reader.Close()
	gzipReaderPool.Put(p.Reader)
	return p.src.Close()
}

// hasToken reports whether a comma-separated header lists token,
// ignoring case and surrounding spaces.
func hasToken(header, token string) bool {
	for _, part := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(part), token) {
			return true
		}
	}
	return false
}
