package samples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(env_sns_arn_name, "")
	t.Setenv(env_webhook_url_name, "")

	samples, err := Load(filepath.Join(t.TempDir(), "client_samples.toml"))
	assert.Nil(t, err)
	assert.Equal(t, Default(), samples)
}

func TestLoad(t *testing.T) {
	t.Setenv(env_sns_arn_name, "")
	t.Setenv(env_webhook_url_name, "")

	path := filepath.Join(t.TempDir(), "client_samples.toml")
	data := `
[upload]
file = "/videos/storm.mp4"
title = "Storm"
tags = ["weather", "storm"]
category_id = "25"
thumbnail = false

[notify]
webhook_url = "https://hooks.example.com/upload"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	samples, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/videos/storm.mp4", samples.Upload.File)
	assert.Equal(t, "Storm", samples.Upload.Title)
	assert.Equal(t, []string{"weather", "storm"}, samples.Upload.Tags)
	assert.Equal(t, "25", samples.Upload.CategoryId)
	assert.False(t, samples.Upload.Thumbnail)
	assert.Equal(t, "https://hooks.example.com/upload", samples.Notify.WebhookUrl)

	// Keys absent from the file keep their defaults
	assert.Equal(t, Default().Upload.Description, samples.Upload.Description)
	assert.Equal(t, "private", samples.Upload.Privacy)
	assert.Equal(t, "", samples.Notify.SnsTopicArn)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(env_sns_arn_name, "arn:aws:sns:us-west-2:123456789012:uploads")
	t.Setenv(env_webhook_url_name, "https://hooks.example.com/env")

	samples, err := Load(filepath.Join(t.TempDir(), "client_samples.toml"))
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:us-west-2:123456789012:uploads", samples.Notify.SnsTopicArn)
	assert.Equal(t, "https://hooks.example.com/env", samples.Notify.WebhookUrl)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_samples.toml")
	require.NoError(t, os.WriteFile(path, []byte("[upload\ntitle = "), 0644))

	samples, err := Load(path)
	assert.NotNil(t, err)
	assert.Equal(t, Default(), samples)
}
