package djatoka

import (
	"net/http"

	"github.com/golang/groupcache"
	"github.com/gorilla/mux"

	d "github.com/tj/go-debug"
)

var debug = d.Debug("djatoka")

// MakeRouter construct the basic router (no middlewares).
func MakeRouter() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/djatoka-metadata.json", MetadataHandler)
	router.HandleFunc("/getRegionFromIIIF", RegionHandler)

	return router
}

// SetGroupCache sets the cache for the fetched IIIF descriptors.
func SetGroupCache(router http.Handler, config *Config, peers ...string) http.Handler {
	// Caching
	pool := groupcache.NewHTTPPool(peers[0])
	pool.Set(peers...)

	var descriptors = groupcache.NewGroup("descriptors", config.Cache.DescriptorsSize, groupcache.GetterFunc(
		func(ctx groupcache.Context, key string, dest groupcache.Sink) error {
			url := key
			data, err := downloadDescriptor(url)
			if err != nil {
				return err
			}
			debug("caching %s", key)
			dest.SetBytes(data)
			return nil
		},
	))

	return WithGroupCaches(router, map[string]*groupcache.Group{
		"descriptors": descriptors,
	})
}
