// Package imaging downscales lot photos before they are stored or sent
// to the captioning model.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// MaxDimension is the longest side of a stored lot photo.
	MaxDimension = 800

	jpegQuality = 70
)

// Downscale decodes a JPEG or PNG, scales it so its longest side is at
// most MaxDimension (never upscaling), and re-encodes as JPEG.
func Downscale(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image.Decode -> %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > MaxDimension || height > MaxDimension {
		if width >= height {
			height = height * MaxDimension / width
			width = MaxDimension
		} else {
			width = width * MaxDimension / height
			height = MaxDimension
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("jpeg.Encode -> %w", err)
	}

	return buf.Bytes(), nil
}

// DownscaleDataURL accepts a base64 data URL (or bare base64) and returns
// the downscaled image as a JPEG data URL.
func DownscaleDataURL(input string) (string, error) {
	payload := input
	if strings.HasPrefix(input, "data:") {
		_, rest, found := strings.Cut(input, ",")
		if !found {
			return "", fmt.Errorf("malformed data URL")
		}
		payload = rest
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("base64.StdEncoding.DecodeString -> %w", err)
	}

	scaled, err := Downscale(raw)
	if err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(scaled), nil
}
