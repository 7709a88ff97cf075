// Package ora writes OpenRaster (.ora) files, the layered image format
// GIMP and Krita open natively. An ORA file is a zip archive holding an
// uncompressed "mimetype" entry first, a stack.xml layer manifest, one
// PNG per layer under data/, and a flattened mergedimage.png.
package ora

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const mimeType = "image/openraster"

// OpenRaster thumbnails must fit within 256x256.
const thumbnailMaxSize = 256

type xmlImage struct {
	XMLName xml.Name `xml:"image"`
	Version string   `xml:"version,attr"`
	W       int      `xml:"w,attr"`
	H       int      `xml:"h,attr"`
	Stack   xmlStack `xml:"stack"`
}

type xmlStack struct {
	Layers []xmlLayer `xml:"layer"`
}

type xmlLayer struct {
	Name        string  `xml:"name,attr"`
	Src         string  `xml:"src,attr"`
	X           int     `xml:"x,attr"`
	Y           int     `xml:"y,attr"`
	Opacity     float64 `xml:"opacity,attr"`
	CompositeOp string  `xml:"composite-op,attr"`
	Visibility  string  `xml:"visibility,attr"`
}

// Writer accumulates layers and writes them out as a single ORA
// archive. Layers are added bottom to top, matching the order a
// renderer produces them in.
type Writer struct {
	width  int
	height int
	layers []layerEntry
	merged image.Image
}

type layerEntry struct {
	name string
	img  image.Image
}

// NewWriter returns a Writer for a canvas of the given pixel size.
func NewWriter(width, height int) *Writer {
	return &Writer{width: width, height: height}
}

// AddLayer appends a layer to the top of the stack.
func (w *Writer) AddLayer(name string, img image.Image) {
	w.layers = append(w.layers, layerEntry{name: name, img: img})
}

// SetMerged sets the flattened composite stored as mergedimage.png and
// used to derive the thumbnail. Required before writing.
func (w *Writer) SetMerged(img image.Image) {
	w.merged = img
}

// WriteTo writes the ORA archive.
func (w *Writer) WriteTo(out io.Writer) error {
	if w.merged == nil {
		return fmt.Errorf("ora: merged image not set")
	}

	zw := zip.NewWriter(out)

	// The mimetype entry must be first and stored uncompressed so
	// file-type sniffers can read it at a fixed offset.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := mt.Write([]byte(mimeType)); err != nil {
		return err
	}

	if err := w.writeStackXML(zw); err != nil {
		return err
	}

	for i, l := range w.layers {
		if err := writePNGEntry(zw, layerPath(i), l.img); err != nil {
			return err
		}
	}

	if err := writePNGEntry(zw, "mergedimage.png", w.merged); err != nil {
		return err
	}
	if err := writePNGEntry(zw, "Thumbnails/thumbnail.png", thumbnail(w.merged)); err != nil {
		return err
	}

	return zw.Close()
}

// Save writes the ORA archive to a file, creating the parent directory
// if needed.
func (w *Writer) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := w.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writeStackXML(zw *zip.Writer) error {
	doc := xmlImage{
		Version: "0.0.3",
		W:       w.width,
		H:       w.height,
	}

	// stack.xml lists layers top to bottom, the reverse of draw order.
	for i := len(w.layers) - 1; i >= 0; i-- {
		doc.Stack.Layers = append(doc.Stack.Layers, xmlLayer{
			Name:        w.layers[i].name,
			Src:         layerPath(i),
			Opacity:     1.0,
			CompositeOp: "svg:src-over",
			Visibility:  "visible",
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	f, err := zw.Create("stack.xml")
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

func layerPath(i int) string {
	return fmt.Sprintf("data/layer_%d.png", i)
}

func writePNGEntry(zw *zip.Writer, name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(buf.Bytes())
	return err
}

func thumbnail(img image.Image) image.Image {
	return imaging.Fit(img, thumbnailMaxSize, thumbnailMaxSize, imaging.Lanczos)
}
