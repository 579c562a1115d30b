package videos

import (
	"context"
	"errors"
	"fmt"
	"io"

	"google.golang.org/api/youtube/v3"
)

const (
	max_page_results = 50
)

var (
	ErrNoService = errors.New("YouTube service is not available")
	ErrNotFound  = errors.New("video not found")
)

// Client is the part of the YouTube Data API the video operations use.
type Client interface {
	MyUploadsPlaylist(ctx context.Context) (string, error)
	ListPlaylistItems(ctx context.Context, playlistID string, pageToken string) (*youtube.PlaylistItemListResponse, error)
	GetVideo(ctx context.Context, videoID string) (*youtube.Video, error)
	InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader) (*youtube.Video, error)
	UpdateVideo(ctx context.Context, video *youtube.Video) (*youtube.Video, error)
	SetThumbnail(ctx context.Context, videoID string, image io.Reader) error
}

type YouTubeV3 struct {
	*youtube.Service
}

var _ Client = (*YouTubeV3)(nil)

func NewYouTubeV3(service *youtube.Service) *YouTubeV3 {
	return &YouTubeV3{Service: service}
}

func (c *YouTubeV3) MyUploadsPlaylist(ctx context.Context) (string, error) {
	response, err := c.Service.Channels.List([]string{"contentDetails"}).
		Mine(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to get the channel of the authenticated user: %w", err)
	}
	for _, channel := range response.Items {
		if channel.ContentDetails != nil && channel.ContentDetails.RelatedPlaylists != nil &&
			channel.ContentDetails.RelatedPlaylists.Uploads != "" {
			return channel.ContentDetails.RelatedPlaylists.Uploads, nil
		}
	}
	return "", errors.New("the authenticated user has no uploads playlist")
}

func (c *YouTubeV3) ListPlaylistItems(
	ctx context.Context,
	playlistID string,
	pageToken string,
) (*youtube.PlaylistItemListResponse, error) {
	r := c.Service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).MaxResults(max_page_results).Context(ctx)
	if pageToken != "" {
		r = r.PageToken(pageToken)
	}
	return r.Do()
}

func (c *YouTubeV3) GetVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	response, err := c.Service.Videos.List([]string{"snippet", "status"}).
		Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}
	return response.Items[0], nil
}

func (c *YouTubeV3) InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader) (*youtube.Video, error) {
	return c.Service.Videos.Insert([]string{"snippet", "status"}, video).
		Media(media).Context(ctx).Do()
}

func (c *YouTubeV3) UpdateVideo(ctx context.Context, video *youtube.Video) (*youtube.Video, error) {
	return c.Service.Videos.Update([]string{"snippet"}, video).Context(ctx).Do()
}

func (c *YouTubeV3) SetThumbnail(ctx context.Context, videoID string, image io.Reader) error {
	_, err := c.Service.Thumbnails.Set(videoID).Media(image).Context(ctx).Do()
	return err
}
