package samples

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	env_sns_arn_name     = "YOUTUBE_UPLOAD_ALERT_SNS_ARN"
	env_webhook_url_name = "YOUTUBE_UPLOAD_ALERT_WEBHOOK_URL"
)

type Samples struct {
	Upload Upload
	Notify Notify
}

type Upload struct {
	File        string
	Title       string
	Description string
	Tags        []string
	CategoryId  string `toml:"category_id"`
	Privacy     string
	Thumbnail   bool
}

type Notify struct {
	SnsTopicArn string `toml:"sns_topic_arn"`
	WebhookUrl  string `toml:"webhook_url"`
}

func Default() Samples {
	return Samples{
		Upload: Upload{
			File:        "sample.mp4",
			Title:       "Test video",
			Description: "Uploaded by the YouTube console client",
			Tags:        []string{"sample", "console"},
			CategoryId:  "22",
			Privacy:     "private",
			Thumbnail:   true,
		},
	}
}

// Load decodes the samples file over the defaults. A missing file yields the
// defaults. Notification targets from the environment win over the file.
func Load(path string) (Samples, error) {
	samples := Default()
	if _, err := toml.DecodeFile(path, &samples); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("unable to decode %s: %w", path, err)
	}

	if arn := os.Getenv(env_sns_arn_name); arn != "" {
		samples.Notify.SnsTopicArn = arn
	}
	if url := os.Getenv(env_webhook_url_name); url != "" {
		samples.Notify.WebhookUrl = url
	}
	return samples, nil
}
