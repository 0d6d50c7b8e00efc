package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/BurntSushi/toml"
	"github.com/hatfieldlibrary/djatoka-over-iiif/djatoka"
)

func main() {
	// Configuration
	var configFile = flag.String("config", "config.toml", "Define the configuration file to use.")
	flag.Parse()

	if flag.NArg() > 0 {
		*configFile = flag.Arg(0)
	}

	var config djatoka.Config
	log.Println(fmt.Sprintf("Reading configuration from %s", *configFile))
	if _, err := toml.DecodeFile(*configFile, &config); err != nil {
		fmt.Println(err)
		return
	}

	if !strings.HasSuffix(config.ServerRoot, "/") {
		config.ServerRoot += "/"
	}

	dS, _ := bytefmt.ToBytes(config.Cache.Descriptors)
	config.Cache.DescriptorsSize = int64(dS)

	resolver, err := djatoka.NewResolver(config.Pattern)
	if err != nil {
		fmt.Println(err)
		return
	}

	// build router with config, resolver and descriptor cache.
	handler := djatoka.SetGroupCache(
		djatoka.WithResolver(
			djatoka.WithConfig(djatoka.MakeRouter(), &config),
			resolver,
		),
		&config,
		fmt.Sprintf("http://%s/", config.Host), // TODO add any other servers here...
	)

	// Serving
	listen := fmt.Sprintf("%v:%v", config.Host, config.Port)

	log.Println(fmt.Sprintf("Server running on %v", listen))
	panic(http.ListenAndServe(listen, handler))
}
