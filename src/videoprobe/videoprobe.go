package videoprobe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var ErrNoVideoStream = errors.New("file has no video stream")

type Info struct {
	FormatName string
	Duration   time.Duration
	Width      int
	Height     int
}

// Prober inspects a local media file before it is uploaded.
type Prober interface {
	Probe(path string) (*Info, error)
}

// FFProbe runs the ffprobe binary through ffmpeg-go.
type FFProbe struct {
	Timeout time.Duration
}

var _ Prober = FFProbe{}

func (p FFProbe) Probe(path string) (*Info, error) {
	var output string
	var err error
	if p.Timeout > 0 {
		output, err = ffmpeg.ProbeWithTimeout(path, p.Timeout, ffmpeg.KwArgs{})
	} else {
		output, err = ffmpeg.Probe(path)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to probe %s: %w", path, err)
	}
	return Parse([]byte(output))
}

type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// Parse reads the JSON that ffprobe prints with -show_format -show_streams.
func Parse(data []byte) (*Info, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unable to parse probe output: %w", err)
	}

	info := &Info{FormatName: out.Format.FormatName}
	if out.Format.Duration != "" {
		seconds, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", out.Format.Duration, err)
		}
		info.Duration = time.Duration(seconds * float64(time.Second))
	}

	for _, stream := range out.Streams {
		if stream.CodecType == "video" {
			info.Width = stream.Width
			info.Height = stream.Height
			return info, nil
		}
	}
	return nil, ErrNoVideoStream
}

func (i *Info) String() string {
	return fmt.Sprintf("%s %dx%d %s", i.FormatName, i.Width, i.Height, i.Duration.Round(time.Second))
}
