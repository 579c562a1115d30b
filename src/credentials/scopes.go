package credentials

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"google.golang.org/api/youtube/v3"
)

// Scopes lists the OAuth2 scopes the YouTube Data API accepts.
var Scopes = []string{
	youtube.YoutubeScope,
	youtube.YoutubeForceSslScope,
	youtube.YoutubeReadonlyScope,
	youtube.YoutubeUploadScope,
	youtube.YoutubepartnerScope,
	youtube.YoutubepartnerChannelAuditScope,
}

type Prompter interface {
	ReadLine(prompt string) (string, error)
}

// ResolveScope asks which scope to request. An empty answer, a read error or
// an answer matching nothing selects defaultScope; a 1-based index or the
// scope string itself selects from requested.
func ResolveScope(p Prompter, out io.Writer, requested []string, defaultScope string) string {
	fmt.Fprintln(out, "Available scopes:")
	for i, scope := range requested {
		fmt.Fprintf(out, "  %d. %s\n", i+1, scope)
	}
	fmt.Fprintf(out, "Default scope: %s\n", defaultScope)

	answer, err := p.ReadLine("Select a scope number, or press Enter for the default: ")
	if err != nil {
		return defaultScope
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultScope
	}
	if index, err := strconv.Atoi(answer); err == nil {
		if index >= 1 && index <= len(requested) {
			return requested[index-1]
		}
		fmt.Fprintf(out, "%d is out of range, using the default scope\n", index)
		return defaultScope
	}
	for _, scope := range requested {
		if scope == answer {
			return scope
		}
	}
	fmt.Fprintf(out, "%s is not a known scope, using the default scope\n", answer)
	return defaultScope
}

// ShouldReuse reports whether a credential granted for grantedScope may serve
// selectedScope.
func ShouldReuse(grantedScope string, selectedScope string) bool {
	return grantedScope != "" && grantedScope == selectedScope
}
