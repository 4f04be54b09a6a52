package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/tradeacademy/indicatorlab/pkg/version.Version=v0.2.0" ./cmd/indicatorlab
var Version = "v0.1.0-dev"
