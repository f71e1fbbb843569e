package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/mojochao/j2render/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/mojochao/j2render/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/mojochao/j2render/internal/version.Date={{.Date}}
)

// String formats the build information on one line
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
