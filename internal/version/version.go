// Package version holds the build version, set with
// -ldflags "-X github.com/leetcoder-bot/leetcoder/internal/version.Version=v1.2.3".
package version

var Version = "dev"
