package djatoka

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/golang/groupcache"
)

// error messages
var upstreamError = "unable to fetch the IIIF descriptor from %#v"
var parseError = "unable to parse the response from %#v"

// client is shared by every in-flight request, its transport pools the
// connections to the IIIF server.
var client = &http.Client{}

// descriptorURL returns the info.json location for a pid.
func descriptorURL(root, pid string) string {
	return root + pid + "/info.json"
}

// downloadDescriptor fetches the raw info.json document.
func downloadDescriptor(url string) ([]byte, error) {
	debug("downloading %v", url)

	resp, err := client.Get(url)
	if err != nil {
		debug("download error: %q : %#v", url, err)
		return nil, Error{UpstreamUnavailable, fmt.Sprintf(upstreamError, url)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, Error{UpstreamUnavailable, fmt.Sprintf(upstreamError, url)}
	}

	buf, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, Error{UpstreamUnavailable, fmt.Sprintf(upstreamError, url)}
	}
	return buf, nil
}

// fetchInfo retrieves and decodes the IIIF descriptor for a pid, going
// through the groupcache group when one is installed.
func fetchInfo(root, pid string, cache *groupcache.Group) (*ImageInfo, error) {
	url := descriptorURL(root, pid)

	var buffer []byte
	if cache != nil {
		err := cache.Get(nil, url, groupcache.AllocatingByteSliceSink(&buffer))
		if err != nil {
			return nil, asError(err)
		}
		debug("from cache %v", url)
	} else {
		var err error
		buffer, err = downloadDescriptor(url)
		if err != nil {
			return nil, err
		}
	}

	var info ImageInfo
	if err := json.Unmarshal(buffer, &info); err != nil {
		return nil, Error{UpstreamUnavailable, fmt.Sprintf(parseError, url)}
	}
	return &info, nil
}
