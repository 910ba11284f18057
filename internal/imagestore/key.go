package imagestore

import (
	"errors"
	"net/url"
	"strings"
)

var ErrMalformedURL = errors.New("image url does not encode /{prefix}/{year}/{filename}")

// ObjectKey выводит ключ объекта {year}/{filename...} из пути вида
// /{bucket-prefix}/{year}/{filename...}
func ObjectKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrMalformedURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrMalformedURL
	}

	segments := make([]string, 0)
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 3 {
		return "", ErrMalformedURL
	}
	return segments[1] + "/" + strings.Join(segments[2:], "/"), nil
}
