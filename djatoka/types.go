package djatoka

// Tile contains the tiling properties of an IIIF image.
type Tile struct {
	Type         string `json:"@type,omitempty"` // empty or iiif:Tile
	ScaleFactors []int  `json:"scaleFactors"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// ImageInfo contains the technical properties about an IIIF image, as
// served by the back-end under <identifier>/info.json. Only the fields
// the shim reads are declared.
type ImageInfo struct {
	Context  string `json:"@context,omitempty"`
	ID       string `json:"@id"`
	Protocol string `json:"protocol,omitempty"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Tiles    []Tile `json:"tiles,omitempty"`
}

// scaleFactors returns the factors of the first tile entry, ordered
// from the coarsest level (largest factor) down to 1.
func (info *ImageInfo) scaleFactors() []int {
	if len(info.Tiles) == 0 {
		return nil
	}
	return info.Tiles[0].ScaleFactors
}

// Metadata is the Djatoka metadata document shown to legacy consumers.
// Djatoka rendered every numeric attribute as a decimal string, so does
// the shim.
type Metadata struct {
	Identifier            string `json:"identifier"`
	Imagefile             string `json:"imagefile"`
	Width                 string `json:"width"`
	Height                string `json:"height"`
	DwtLevels             string `json:"dwtLevels"`
	Levels                string `json:"levels"`
	CompositingLayerCount string `json:"compositingLayerCount"`
}

// RegionRequest holds the raw query parameters of a legacy region call.
type RegionRequest struct {
	Level  string
	Region string // y,x,h,w at the requested level's resolution
	Scale  string // fraction ("0.5") or pixel box ("200" or "300,200")
}

// RegionSpec is the translated IIIF region and size of a region call.
type RegionSpec struct {
	Region string // "full" or x,y,w,h at full resolution
	Size   string // "pct:<n>[,<n>]" or "!<w>,<h>"
}

// Config stores the shim configuration.
type Config struct {
	Host       string      `toml:"host"`
	Port       int         `toml:"port"`
	ServerRoot string      `toml:"serverRoot"` // IIIF server base, trailing slash
	Pattern    string      `toml:"identifierPattern"`
	Cache      CacheConfig `toml:"cache"`
}

// CacheConfig represents the configuration information regarding the
// descriptor cache.
type CacheConfig struct {
	Descriptors     string `toml:"descriptors"`
	DescriptorsSize int64
}
