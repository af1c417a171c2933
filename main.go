package main

import (
	"fmt"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *BandsManager

func main() {
	logger := slog.New(NewLogHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := ReadConfig("./config.yaml")
	MANAGER = NewBandsManager(config)

	app := http.NewServeMux()
	MapGet(app, "/v0/graphs", func(none) Result {
		return OK(MANAGER.GraphNames())
	})
	MapPost(app, "/v0/resolve", HandleResolveRequest)
	MapPost(app, "/v0/reachability", HandleReachabilityRequest)
	MapPost(app, "/v0/serviceareas", HandleServiceAreaRequest)
	MapPost(app, "/v0/servicebands", HandleServiceBandsRequest)

	port := config.Server.Port
	if port == 0 {
		port = 5002
	}
	slog.Info(fmt.Sprintf("server listening on :%v", port))
	http.ListenAndServe(fmt.Sprintf(":%v", port), app)
}
