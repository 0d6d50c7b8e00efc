package djatoka

import (
	"fmt"
	"net/url"
	"strconv"
)

// error messages
var metadataError = "IIIF descriptor for %#v is missing %s"

// fakePathPrefix spoofs the imagefile attribute. Legacy consumers only
// require a syntactically valid path, nothing ever dereferences it.
const fakePathPrefix = "/this/is/a/fake/path/to/spoof/djatoka/"

// NewMetadata derives the Djatoka metadata document from an IIIF
// descriptor. The level count is one less than the number of scale
// factors, an arithmetic Djatoka consumers depend on.
func NewMetadata(info *ImageInfo) (*Metadata, error) {
	factors := info.scaleFactors()
	if len(factors) == 0 {
		return nil, Error{MalformedMetadata, fmt.Sprintf(metadataError, info.ID, "tiles.scaleFactors")}
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, Error{MalformedMetadata, fmt.Sprintf(metadataError, info.ID, "width or height")}
	}

	levels := strconv.Itoa(len(factors) - 1)

	return &Metadata{
		Identifier: info.ID,
		Imagefile:  fakePathPrefix + url.QueryEscape(info.ID),
		Width:      strconv.Itoa(info.Width),
		Height:     strconv.Itoa(info.Height),
		DwtLevels:  levels,
		Levels:     levels,
		// Multi-layer composite images are unsupported.
		CompositingLayerCount: "1",
	}, nil
}
