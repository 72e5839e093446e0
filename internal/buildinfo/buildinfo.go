// Package buildinfo reports version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/pointquest-admin/internal/buildinfo.buildVersion=v1.2.0 \
//	  -X github.com/dmitrijs2005/pointquest-admin/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD) \
//	  -X 'github.com/dmitrijs2005/pointquest-admin/internal/buildinfo.buildDate=$(date -u)'" ./cmd/admin
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes the version, date and commit, "N/A" for unset ones.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
