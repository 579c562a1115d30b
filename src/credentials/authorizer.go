package credentials

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/oauth2"

	"github.com/pashonic/ytconsole/src/utils/debug"
)

// Authorizer runs the consent flow for cfg and returns the granted token.
type Authorizer interface {
	Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)
}

// LoopbackAuthorizer receives the authorization code on a local HTTP
// listener. When the listener cannot be opened the code is read from the
// console instead.
type LoopbackAuthorizer struct {
	Port        uint16
	Prompter    Prompter
	Out         io.Writer
	OpenBrowser func(url string) error
}

var _ Authorizer = (*LoopbackAuthorizer)(nil)

type codeResult struct {
	code string
	err  error
}

func (a *LoopbackAuthorizer) Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	state, err := newState()
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", a.Port))
	if err != nil {
		debug.Log("Unable to open loopback listener: %v", err)
		return a.authorizeViaConsole(ctx, cfg, state)
	}

	authCfg := *cfg
	authCfg.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)

	resultCh := make(chan codeResult, 1)
	srv := &http.Server{Handler: codeHandler(state, resultCh)}
	go srv.Serve(listener)
	defer srv.Close()

	authURL := authCfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Fprintf(a.Out, "Authorize this application by visiting the URL below:\n\n\t%s\n\n", authURL)

	openBrowser := a.OpenBrowser
	if openBrowser == nil {
		openBrowser = launchBrowser
	}
	if err := openBrowser(authURL); err != nil {
		debug.Log("Unable to launch a browser: %v", err)
	}

	var result codeResult
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result = <-resultCh:
	}
	if result.err != nil {
		return nil, result.err
	}

	token, err := authCfg.Exchange(ctx, result.code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return token, nil
}

func (a *LoopbackAuthorizer) authorizeViaConsole(ctx context.Context, cfg *oauth2.Config, state string) (*oauth2.Token, error) {
	if a.Prompter == nil {
		return nil, errors.New("no way to receive the authorization code")
	}
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Fprintf(a.Out, "Authorize this application by visiting the URL below:\n\n\t%s\n\n", authURL)

	code, err := a.Prompter.ReadLine("Paste the authorization code and press Enter: ")
	if err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("empty authorization code")
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return token, nil
}

func codeHandler(state string, resultCh chan<- codeResult) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		var result codeResult
		switch {
		case r.FormValue("error") != "":
			result.err = fmt.Errorf("authorization denied: %s", r.FormValue("error"))
		case r.FormValue("state") != state:
			result.err = errors.New("authorization state mismatch")
		case r.FormValue("code") == "":
			result.err = errors.New("no authorization code received")
		default:
			result.code = r.FormValue("code")
		}

		w.Header().Set("Content-Type", "text/plain")
		if result.err != nil {
			fmt.Fprintf(w, "Authorization failed: %v\r\n\r\nYou can close this browser window.", result.err)
		} else {
			fmt.Fprint(w, "Authorization received.\r\n\r\nYou can now safely close this browser window.")
		}

		select {
		case resultCh <- result:
		default:
		}
	})
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func launchBrowser(url string) error {
	var args []string
	switch runtime.GOOS {
	case "darwin":
		args = []string{"open"}
	case "linux":
		args = []string{"xdg-open"}
	case "windows":
		args = []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return fmt.Errorf("unsupported platform: <%s>", runtime.GOOS)
	}

	args = append(args, url)
	debug.Log("Launching a browser using command '%s'", strings.Join(args, " "))
	return exec.Command(args[0], args[1:]...).Start()
}
