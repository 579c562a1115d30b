package videos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/api/youtube/v3"

	"github.com/pashonic/ytconsole/src/samples"
	"github.com/pashonic/ytconsole/src/utils/debug"
	"github.com/pashonic/ytconsole/src/videoprobe"
)

const (
	upload_alert_subject = "YouTube Video Uploaded"
	video_link_prefix    = "https://youtu.be/"
)

type Console interface {
	ReadLine(prompt string) (string, error)
	Printf(format string, args ...interface{})
}

type Notifier interface {
	Notify(subject string, message string) error
}

type Thumbnailer interface {
	Render(title string) ([]byte, error)
}

// Operations are the one-shot video procedures offered by the menu. They share
// one client and never keep state between calls.
type Operations struct {
	client      Client
	console     Console
	upload      samples.Upload
	resolvePath func(string) string
	prober      videoprobe.Prober
	thumbnailer Thumbnailer
	notifiers   []Notifier
}

type Option func(*Operations)

func WithPathResolver(resolve func(string) string) Option {
	return func(o *Operations) { o.resolvePath = resolve }
}

func WithProber(prober videoprobe.Prober) Option {
	return func(o *Operations) { o.prober = prober }
}

func WithThumbnailer(thumbnailer Thumbnailer) Option {
	return func(o *Operations) { o.thumbnailer = thumbnailer }
}

func WithNotifiers(notifiers ...Notifier) Option {
	return func(o *Operations) { o.notifiers = append(o.notifiers, notifiers...) }
}

// New builds the operations. client may be nil, in which case every
// operation fails with ErrNoService.
func New(client Client, console Console, upload samples.Upload, opts ...Option) *Operations {
	o := &Operations{
		client:      client,
		console:     console,
		upload:      upload,
		resolvePath: func(path string) string { return path },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ListVideos prints the id and title of every video in the uploads playlist.
func (o *Operations) ListVideos(ctx context.Context) error {
	if o.client == nil {
		return ErrNoService
	}

	playlistID, err := o.client.MyUploadsPlaylist(ctx)
	if err != nil {
		return err
	}
	debug.Log("Uploads playlist: %s", playlistID)

	count := 0
	pageToken := ""
	for {
		response, err := o.client.ListPlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return fmt.Errorf("unable to list uploaded videos: %w", err)
		}
		for _, item := range response.Items {
			if item.Snippet == nil || item.Snippet.ResourceId == nil {
				continue
			}
			o.console.Printf("%s  %s\n", item.Snippet.ResourceId.VideoId, item.Snippet.Title)
			count++
		}
		if response.NextPageToken == "" || response.NextPageToken == pageToken {
			break
		}
		pageToken = response.NextPageToken
	}
	o.console.Printf("%d videos found\n", count)
	return nil
}

// UploadVideo uploads the sample video with the sample metadata.
func (o *Operations) UploadVideo(ctx context.Context) error {
	if o.client == nil {
		return ErrNoService
	}

	path := o.resolvePath(o.upload.File)
	if path == "" {
		return errors.New("no sample video file configured")
	}

	if o.prober != nil {
		info, err := o.prober.Probe(path)
		if err != nil {
			log.Printf("Unable to probe %s: %v\n", path, err)
		} else {
			o.console.Printf("Video file: %s (%s)\n", path, info)
		}
	}

	// Open video file
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open video file: %w", err)
	}
	defer file.Close()

	// Create upload parameter object
	upload := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       o.upload.Title,
			Description: o.upload.Description,
			CategoryId:  o.upload.CategoryId,
			Tags:        o.upload.Tags,
		},
		Status: &youtube.VideoStatus{PrivacyStatus: o.upload.Privacy},
	}

	// Upload video
	o.console.Printf("Uploading %s...\n", path)
	response, err := o.client.InsertVideo(ctx, upload, file)
	if err != nil {
		return fmt.Errorf("unable to upload video: %w", err)
	}
	o.console.Printf("Upload successful! Video ID: %v\n", response.Id)

	if o.upload.Thumbnail && o.thumbnailer != nil {
		if err := o.setThumbnail(ctx, response.Id); err != nil {
			o.console.Printf("Unable to set the thumbnail: %v\n", err)
		}
	}

	// Send alerts
	youtubeLink := video_link_prefix + response.Id
	for _, notifier := range o.notifiers {
		if err := notifier.Notify(upload_alert_subject, youtubeLink); err != nil {
			log.Printf("Unable to send upload alert: %v\n", err)
		}
	}
	return nil
}

func (o *Operations) setThumbnail(ctx context.Context, videoID string) error {
	data, err := o.thumbnailer.Render(o.upload.Title)
	if err != nil {
		return err
	}
	if err := o.client.SetThumbnail(ctx, videoID, bytes.NewReader(data)); err != nil {
		return err
	}
	o.console.Printf("Thumbnail set for video %s\n", videoID)
	return nil
}

// UpdateVideo asks for a video id and new snippet values, keeping the current
// value for every empty answer.
func (o *Operations) UpdateVideo(ctx context.Context) error {
	if o.client == nil {
		return ErrNoService
	}

	videoID, err := o.console.ReadLine("Enter the ID of the video to update: ")
	if err != nil {
		return fmt.Errorf("unable to read the video ID: %w", err)
	}
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return errors.New("no video ID entered")
	}

	video, err := o.client.GetVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if video.Snippet == nil {
		return fmt.Errorf("YouTube have not provided the current snippet of video %v", videoID)
	}
	o.console.Printf("Current title: %s\n", video.Snippet.Title)
	o.console.Printf("Current description: %s\n", video.Snippet.Description)

	changed := false
	title, err := o.console.ReadLine("New title (Enter keeps the current one): ")
	if err != nil {
		return fmt.Errorf("unable to read the title: %w", err)
	}
	if title = strings.TrimSpace(title); title != "" && title != video.Snippet.Title {
		video.Snippet.Title = title
		changed = true
	}
	description, err := o.console.ReadLine("New description (Enter keeps the current one): ")
	if err != nil {
		return fmt.Errorf("unable to read the description: %w", err)
	}
	if description = strings.TrimSpace(description); description != "" && description != video.Snippet.Description {
		video.Snippet.Description = description
		changed = true
	}

	if !changed {
		o.console.Printf("Nothing to update for video %s\n", videoID)
		return nil
	}

	updated, err := o.client.UpdateVideo(ctx, &youtube.Video{Id: video.Id, Snippet: video.Snippet})
	if err != nil {
		return fmt.Errorf("unable to update video %s: %w", videoID, err)
	}
	if updated.Snippet != nil {
		title = updated.Snippet.Title
	} else {
		title = video.Snippet.Title
	}
	o.console.Printf("Video %s updated, title: %s\n", videoID, title)
	return nil
}
