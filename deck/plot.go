package deck

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Plot is an already-rendered chart image destined for a slide's content
// region. Caption is an optional annotation used as the default subtitle.
type Plot struct {
	Data    []byte
	MIME    string
	Caption string
}

var plotMIMEByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// PlotFromFile loads a plot image from disk, deriving the MIME type from
// the file extension.
func PlotFromFile(path string) (Plot, error) {
	mime, ok := plotMIMEByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Plot{}, fmt.Errorf("%w: image type %q", ErrUnsupportedInput, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Plot{}, fmt.Errorf("failed to read plot image: %w", err)
	}

	return Plot{Data: data, MIME: mime}, nil
}

// PlotFromDataURI decodes a "data:image/...;base64,..." payload, the
// transport format charts typically arrive in.
func PlotFromDataURI(uri string) (Plot, error) {
	if !strings.HasPrefix(uri, "data:image") {
		return Plot{}, fmt.Errorf("%w: not an image data URI", ErrUnsupportedInput)
	}

	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 {
		return Plot{}, fmt.Errorf("%w: malformed data URI", ErrUnsupportedInput)
	}

	mime := "image/png"
	if strings.Contains(parts[0], "image/jpeg") {
		mime = "image/jpeg"
	} else if strings.Contains(parts[0], "image/gif") {
		mime = "image/gif"
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return Plot{}, fmt.Errorf("failed to decode plot image: %w", err)
	}

	return Plot{Data: data, MIME: mime}, nil
}
