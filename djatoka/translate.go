package djatoka

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// error messages
var levelError = "djatoka `level` argument does not address any of the %d scale factors: %#v"
var levelParseError = "djatoka `level` argument is not recognized: %#v"
var regionError = "djatoka `region` argument is not recognized: %#v"
var scaleError = "djatoka `scale` argument is not recognized: %#v"

// fractionPattern recognizes the legacy fractional scale token, e.g.
// "0.5" or ".25".
var fractionPattern = regexp.MustCompile(`^\d*\.\d+$`)

// levelUnspecified is the sentinel meaning "finest available".
const levelUnspecified = "-1"

// Translate converts a legacy region request into an IIIF region and
// size. The descriptor is obtained lazily through fetch, a scale-only
// request never touches the IIIF server.
func Translate(req *RegionRequest, fetch func() (*ImageInfo, error)) (*RegionSpec, error) {
	// Support for just a scaled full image.
	if req.Region == "" && req.Scale != "" {
		return translateScale(req.Scale)
	}
	return translateLevel(req, fetch)
}

// translateScale handles the region-less branch. A fractional token is
// a uniform percentage of full size, anything else is a pixel box to
// fit the image within.
func translateScale(scale string) (*RegionSpec, error) {
	if fractionPattern.MatchString(scale) {
		f, err := strconv.ParseFloat(scale, 64)
		if err != nil {
			return nil, Error{InvalidParameter, fmt.Sprintf(scaleError, scale)}
		}
		pct := formatPct(100 * f)
		return &RegionSpec{
			Region: "full",
			Size:   fmt.Sprintf("pct:%s,%s", pct, pct),
		}, nil
	}

	box := scale
	if !strings.Contains(box, ",") {
		box = scale + "," + scale
	}

	wh := strings.Split(box, ",")
	if len(wh) != 2 {
		return nil, Error{InvalidParameter, fmt.Sprintf(scaleError, scale)}
	}
	for _, v := range wh {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, Error{InvalidParameter, fmt.Sprintf(scaleError, scale)}
		}
	}

	return &RegionSpec{Region: "full", Size: "!" + box}, nil
}

// translateLevel handles level/region addressing against the fetched
// descriptor.
func translateLevel(req *RegionRequest, fetch func() (*ImageInfo, error)) (*RegionSpec, error) {
	info, err := fetch()
	if err != nil {
		return nil, err
	}

	factors := info.scaleFactors()
	if len(factors) == 0 {
		return nil, Error{MalformedMetadata, fmt.Sprintf(metadataError, info.ID, "tiles.scaleFactors")}
	}

	level := req.Level
	if level == "" || level == levelUnspecified {
		level = strconv.Itoa(len(factors) - 1)
	}
	n, err := strconv.Atoi(level)
	if err != nil {
		return nil, Error{InvalidParameter, fmt.Sprintf(levelParseError, req.Level)}
	}

	// Djatoka numbers levels from the coarsest up while the descriptor
	// lists factors from coarsest to finest, so level 0 lives at the
	// end of the array. Out-of-range levels fail, never clamp.
	index := len(factors) - (n + 1)
	if index < 0 || index >= len(factors) {
		return nil, Error{LevelOutOfRange, fmt.Sprintf(levelError, len(factors), req.Level)}
	}
	scale := factors[index]

	region := "full"
	if strings.Contains(req.Region, ",") {
		region, err = projectRegion(req.Region, scale)
		if err != nil {
			return nil, err
		}
	}

	return &RegionSpec{
		Region: region,
		Size:   "pct:" + formatPct(100/float64(scale)),
	}, nil
}

// projectRegion maps a level-relative y,x,h,w rectangle onto the
// x,y,w,h order IIIF expects. Only the extent is multiplied by the
// scale factor, the offset passes through untouched, exactly as
// Djatoka consumers expect.
func projectRegion(region string, scale int) (string, error) {
	yxhw := strings.Split(region, ",")
	if len(yxhw) != 4 {
		return "", Error{InvalidParameter, fmt.Sprintf(regionError, region)}
	}

	var values [4]int
	for i, v := range yxhw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", Error{InvalidParameter, fmt.Sprintf(regionError, region)}
		}
		values[i] = n
	}

	y, x, h, w := values[0], values[1], values[2], values[3]
	return fmt.Sprintf("%d,%d,%d,%d", x, y, w*scale, h*scale), nil
}

// formatPct renders a percentage without a trailing ".0", 100/8 gives
// "12.5" and 100/1 gives "100".
func formatPct(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ImageURL assembles the IIIF image locator for a translated request.
// Rotation and quality are fixed, Djatoka never exposed either.
func (spec *RegionSpec) ImageURL(root, pid string) string {
	return fmt.Sprintf("%s%s/%s/%s/0/default.jpg", root, pid, spec.Region, spec.Size)
}
