package domain

// TextRun is a piece of text positioned on a page, in points from the top-left corner.
type TextRun struct {
	Text string
	X    float64
	Y    float64
}

// Raster is a rendered page image, encoded in Format (e.g. "tiff").
type Raster struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Release drops the image buffer. Safe on a nil raster.
func (r *Raster) Release() {
	if r == nil {
		return
	}
	r.Data = nil
}

// Empty reports whether the raster holds no image data.
func (r *Raster) Empty() bool {
	return r == nil || len(r.Data) == 0
}

// Document is a loaded PDF. Pages are addressed 0-based.
type Document interface {
	PageCount() int
	Page(index int) (Page, error)
	Close() error
}

// Page exposes the text layer of a single page and renders it for OCR.
type Page interface {
	TextRuns() ([]TextRun, error)
	Render(scale float64) (*Raster, error)
}

// Renderer loads documents from raw bytes.
// Load fails with *DocumentLoadError when the bytes are not a valid document.
type Renderer interface {
	Load(data []byte) (Document, error)
}

// OCRProvider creates recognition engines for a language model (e.g. "por").
// NewEngine fails with *OCREngineError.
type OCRProvider interface {
	NewEngine(language string) (OCREngine, error)
}

// OCREngine recognizes text in rasters. onProgress receives fractions in [0,1]
// and may be nil. Release must be called once the engine is no longer needed.
type OCREngine interface {
	Recognize(img *Raster, onProgress func(float64)) (string, error)
	Release() error
}
