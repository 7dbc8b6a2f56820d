package cmd

import (
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/config"
	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/network"
)

// newClient builds an API client from the active configuration.
func newClient() *api.Client {
	backend, err := config.LoadBackend()
	handleErr(err)

	log.WithFields(log.Fields{
		"base":    backend.BaseURL,
		"timeout": backend.Timeout,
	}).Debug("using backend")

	return api.New(
		backend.BaseURL,
		api.WithHTTPClient(network.New(backend.Timeout)),
		api.WithUserAgent(backend.UserAgent),
	)
}

// urlArg returns the first positional argument, if any.
func urlArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
