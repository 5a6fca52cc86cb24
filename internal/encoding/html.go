package encoding

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/geosolutions-it/gsr/internal/config"
)

// htmlPage renders a value as a minimal HTML document wrapping its
// pretty-printed JSON representation, matching the plain service pages
// GeoServices clients expect from browsers.
var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>GSR Service</title></head>
<body>
<pre>{{.}}</pre>
</body>
</html>
`))

// htmlEncoder implements Encoder for HTML.
type htmlEncoder struct {
	inner Encoder
}

// NewHTMLEncoder creates an HTML renderer.
func NewHTMLEncoder() Encoder {
	return &htmlEncoder{inner: NewJSONEncoder(true)}
}

// Encode renders the value as an HTML document.
func (e *htmlEncoder) Encode(v interface{}) ([]byte, error) {
	body, err := e.inner.Encode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := htmlPage.Execute(&buf, string(body)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	return buf.Bytes(), nil
}

// ContentType returns the HTML content type.
func (e *htmlEncoder) ContentType() string {
	return config.ContentTypeHTML
}
