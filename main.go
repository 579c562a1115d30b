package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/pashonic/ytconsole/src/console"
	"github.com/pashonic/ytconsole/src/credentials"
	"github.com/pashonic/ytconsole/src/menu"
	"github.com/pashonic/ytconsole/src/samples"
	"github.com/pashonic/ytconsole/src/settings"
	"github.com/pashonic/ytconsole/src/thumbnail"
	"github.com/pashonic/ytconsole/src/utils/debug"
	"github.com/pashonic/ytconsole/src/utils/sendsns"
	"github.com/pashonic/ytconsole/src/utils/webhook"
	"github.com/pashonic/ytconsole/src/videoprobe"
	"github.com/pashonic/ytconsole/src/videos"
)

const (
	service_name     = "Google YouTube Service"
	menu_title       = "YouTube Menu"
	default_client   = "service"
	application_name = "ytconsole"
	probe_timeout    = 30 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// parseClient returns the API client name given as the only argument, or
// the default one when none is given.
func parseClient(args []string) (string, error) {
	switch len(args) {
	case 0:
		return default_client, nil
	case 1:
		if strings.TrimSpace(args[0]) == "" {
			return default_client, nil
		}
		return args[0], nil
	}
	return "", fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	debug.FromEnv()
	menu.WelcomeMessage(stdout, service_name)

	// Read input parameters
	client, err := parseClient(args)
	if err != nil {
		fmt.Fprintf(stdout, "IO error trying to read application input! %v\n", err)
		return 1
	}
	debug.Log("Start %s console application", client)

	// Load default settings
	layout, err := settings.DefaultLayout()
	if err != nil {
		fmt.Fprintf(stdout, "Error occurred; %v\n", err)
		return 1
	}
	store := settings.NewStore(layout.DefaultsPath())
	defaults, err := store.Load()
	if err != nil {
		fmt.Fprintf(stdout, "Error occurred; %v\n", err)
		return 1
	}
	debug.Log("Settings:\n%s", defaults)

	ctx := context.Background()
	con := console.New(stdin, stdout)

	// Authenticated client, nil when authentication failed
	var videoClient videos.Client
	service, err := authenticate(ctx, con, layout, store, defaults, client)
	if err != nil {
		fmt.Fprintf(stdout, "Error %v during YouTube authentication.\n", err)
	} else {
		videoClient = videos.NewYouTubeV3(service)
	}

	uploadSamples := loadSamples(stdout, layout)
	ops := videos.New(videoClient, con, uploadSamples.Upload, operationOptions(layout, uploadSamples.Notify)...)
	m := menu.New(menu_title, con).
		Add("lv", "List uploaded videos", ops.ListVideos).
		Add("uv", "Upload the sample video", ops.UploadVideo).
		Add("udv", "Update a video title and description", ops.UpdateVideo)
	if err := m.Run(ctx); err != nil {
		fmt.Fprintln(stdout, err)
	}

	menu.GoodbyeMessage(stdout, service_name)
	return 0
}

func authenticate(
	ctx context.Context,
	con *console.Console,
	layout settings.Layout,
	store *settings.Store,
	defaults *settings.Settings,
	client string,
) (*youtube.Service, error) {
	manager, err := credentials.New(
		layout.SecretsPath(),
		credentials.NewFileStore(layout.CredentialPath()),
		&credentials.LoopbackAuthorizer{Prompter: con, Out: con.Writer()},
		credentials.WithClientOptions(option.WithUserAgent(application_name+"/"+client)),
	)
	if err != nil {
		return nil, err
	}

	defaultScope := defaults.DefaultScope
	if defaultScope == "" {
		defaultScope = youtube.YoutubeScope
	}
	selectedScope := credentials.ResolveScope(con, con.Writer(), credentials.Scopes, defaultScope)
	debug.Log("Selected scope: %s", selectedScope)

	// Reuse the stored credential only for the scope it was granted for
	reuse := credentials.ShouldReuse(defaults.CurrentScope, selectedScope)
	service, err := manager.Authenticate(ctx, selectedScope, reuse)
	if err != nil {
		return nil, err
	}

	defaults.Set(settings.KeyCurrentScope, selectedScope)
	if err := store.Update(settings.KeyCurrentScope, selectedScope); err != nil {
		con.Printf("Error occurred; unable to record the current scope: %v\n", err)
	}
	return service, nil
}

func loadSamples(stdout io.Writer, layout settings.Layout) samples.Samples {
	s, err := samples.Load(layout.SamplesPath())
	if err != nil {
		fmt.Fprintf(stdout, "Error occurred; %v, using the default samples\n", err)
	}
	return s
}

func operationOptions(layout settings.Layout, notify samples.Notify) []videos.Option {
	opts := []videos.Option{
		videos.WithPathResolver(layout.Resolve),
		videos.WithProber(videoprobe.FFProbe{Timeout: probe_timeout}),
	}

	renderer, err := thumbnail.New()
	if err != nil {
		log.Printf("Unable to load the thumbnail font: %v\n", err)
	} else {
		opts = append(opts, videos.WithThumbnailer(renderer))
	}

	if notify.SnsTopicArn != "" {
		publisher, err := sendsns.New(notify.SnsTopicArn)
		if err != nil {
			log.Printf("Unable to create the SNS publisher: %v\n", err)
		} else {
			opts = append(opts, videos.WithNotifiers(publisher))
		}
	}
	if notify.WebhookUrl != "" {
		opts = append(opts, videos.WithNotifiers(webhook.New(notify.WebhookUrl)))
	}
	return opts
}
