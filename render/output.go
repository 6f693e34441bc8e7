package render

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	chart "github.com/wcharczuk/go-chart/v2"
)

// encoder turns a figure into file bytes for one output format.
type encoder func(f figure) ([]byte, error)

func encoderFor(filename string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case "", ".png":
		return encodePNG, nil
	case ".svg":
		return encodeSVG, nil
	case ".jpg", ".jpeg":
		return encodeJPEG, nil
	case ".pdf":
		return encodePDF, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

func encodePNG(f figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeSVG(f figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJPEG(f figure) ([]byte, error) {
	raw, err := encodePNG(f)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// encodePDF places the PNG rendering on a single page sized to the image.
func encodePDF(f figure) ([]byte, error) {
	raw, err := encodePNG(f)
	if err != nil {
		return nil, err
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	w, h := float64(cfg.Width), float64(cfg.Height)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(raw))
	pdf.ImageOptions("chart", 0, 0, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
