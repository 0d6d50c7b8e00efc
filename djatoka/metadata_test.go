package djatoka

import (
	"strings"
	"testing"
)

func TestNewMetadata(t *testing.T) {
	metadata, err := NewMetadata(testInfo())
	if err != nil {
		t.Fatal(err)
	}

	var tests = []struct {
		name string
		got  string
		want string
	}{
		{"identifier", metadata.Identifier, "uva-lib:123"},
		{"width", metadata.Width, "6000"},
		{"height", metadata.Height, "4000"},
		{"dwtLevels", metadata.DwtLevels, "3"},
		{"levels", metadata.Levels, "3"},
		{"compositingLayerCount", metadata.CompositingLayerCount, "1"},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s is %#v want %#v", test.name, test.got, test.want)
		}
	}

	if !strings.HasPrefix(metadata.Imagefile, fakePathPrefix) {
		t.Errorf("imagefile should start with the fake path, got %#v", metadata.Imagefile)
	}
}

func TestNewMetadataEscapesIdentifier(t *testing.T) {
	info := testInfo()
	info.ID = "uva-lib:123/derived image"

	metadata, err := NewMetadata(info)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(strings.TrimPrefix(metadata.Imagefile, fakePathPrefix), "/") {
		t.Errorf("imagefile should percent-encode the identifier, got %#v", metadata.Imagefile)
	}
	if strings.Contains(metadata.Imagefile, " ") {
		t.Errorf("imagefile should not contain spaces, got %#v", metadata.Imagefile)
	}
}

func TestNewMetadataFailing(t *testing.T) {
	var tests = []struct {
		name string
		info *ImageInfo
	}{
		{"no tiles", &ImageInfo{ID: "a", Width: 10, Height: 10}},
		{"empty scaleFactors", &ImageInfo{ID: "a", Width: 10, Height: 10, Tiles: []Tile{{}}}},
		{"no width", &ImageInfo{ID: "a", Height: 10, Tiles: []Tile{{ScaleFactors: []int{1}}}}},
		{"no height", &ImageInfo{ID: "a", Width: 10, Tiles: []Tile{{ScaleFactors: []int{1}}}}},
	}

	for _, test := range tests {
		_, err := NewMetadata(test.info)
		if err == nil {
			t.Errorf("%s should fail", test.name)
			continue
		}

		e, ok := err.(Error)
		if !ok || e.Kind != MalformedMetadata {
			t.Errorf("%s failed with %#v want malformed metadata", test.name, err)
		}
	}
}
