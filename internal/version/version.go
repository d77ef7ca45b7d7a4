package version

// Set at build time via -ldflags, e.g.
// go build -ldflags "-X TubeBend/internal/version.Version=1.0.0"
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
