package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"google.golang.org/api/youtube/v3"

	"github.com/pashonic/ytconsole/src/console"
	"github.com/pashonic/ytconsole/src/credentials"
	"github.com/pashonic/ytconsole/src/settings"
	"github.com/pashonic/ytconsole/src/utils/debug"
)

func main() {
	debug.FromEnv()

	// Check arguments.
	if len(os.Args) > 2 {
		fmt.Println("youtube-token-generator [scope]")
		os.Exit(1)
	}

	layout, err := settings.DefaultLayout()
	if err != nil {
		log.Fatal(err)
	}
	store := settings.NewStore(layout.DefaultsPath())
	defaults, err := store.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Scope from the argument, then the settings, then upload
	scope := defaults.DefaultScope
	if len(os.Args) == 2 {
		scope = os.Args[1]
	}
	if scope == "" {
		scope = youtube.YoutubeUploadScope
	}

	con := console.New(os.Stdin, os.Stdout)
	tokenStore := credentials.NewFileStore(layout.CredentialPath())
	manager, err := credentials.New(
		layout.SecretsPath(),
		tokenStore,
		&credentials.LoopbackAuthorizer{Prompter: con, Out: os.Stdout},
	)
	if err != nil {
		log.Fatal(err)
	}

	// Always ask for a fresh consent
	if _, err := manager.Authenticate(context.Background(), scope, false); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved credential file to: %s\n", tokenStore.Path())

	if err := store.Update(settings.KeyCurrentScope, scope); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Current scope is now: %s\n", scope)
}
