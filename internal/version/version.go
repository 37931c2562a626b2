package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X github.com/udsdoc/udsdoc/internal/version.Version=v0.1.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
