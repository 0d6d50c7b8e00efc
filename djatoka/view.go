package djatoka

import (
	"encoding/json"
	"net/http"

	"github.com/golang/groupcache"
)

// MetadataHandler responds with the Djatoka metadata document for the
// image behind the legacy `url` parameter.
func MetadataHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	config, _ := ctx.Value(ContextKey("config")).(*Config)
	resolver, _ := ctx.Value(ContextKey("resolver")).(*Resolver)
	descriptors, _ := ctx.Value(ContextKey("descriptors")).(*groupcache.Group)

	pid, err := resolver.Pid(r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, err)
		return
	}

	info, err := fetchInfo(config.ServerRoot, pid, descriptors)
	if err != nil {
		writeError(w, err)
		return
	}

	metadata, err := NewMetadata(info)
	if err != nil {
		writeError(w, err)
		return
	}

	buffer, err := json.Marshal(metadata)
	if err != nil {
		http.Error(w, "cannot encode the metadata", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(buffer)
}

// RegionHandler compensates for the API differences between Djatoka
// and IIIF for region requests. Djatoka expects a level to indicate
// scale and a y,x,h,w region at that level's resolution, IIIF expects
// the region at full resolution plus a size telling how large the
// result should be. The translated locator is issued as a temporary
// redirect, no content goes through the shim.
func RegionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	config, _ := ctx.Value(ContextKey("config")).(*Config)
	resolver, _ := ctx.Value(ContextKey("resolver")).(*Resolver)
	descriptors, _ := ctx.Value(ContextKey("descriptors")).(*groupcache.Group)

	query := r.URL.Query()

	pid, err := resolver.Pid(query.Get("contentUrl"))
	if err != nil {
		writeError(w, err)
		return
	}

	req := &RegionRequest{
		Level:  query.Get("level"),
		Region: query.Get("region"),
		Scale:  query.Get("scale"),
	}

	spec, err := Translate(req, func() (*ImageInfo, error) {
		return fetchInfo(config.ServerRoot, pid, descriptors)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, spec.ImageURL(config.ServerRoot, pid), http.StatusTemporaryRedirect)
}

// writeError renders a translation failure with its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	e := asError(err)
	http.Error(w, e.Error(), e.StatusCode())
}
