package composer

import (
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// renderSpec is the resolved input of one ffmpeg invocation
type renderSpec struct {
	ImagePath  string
	AudioPath  string
	OutputPath string
	// CaptionFile is relative to the directory ffmpeg runs in
	CaptionFile string
	Width       int
	Height      int
	Background  rgb
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildArgs assembles the ffmpeg command line.
// Layers are stacked background, then image, then caption.
func (c *implComposer) buildArgs(spec renderSpec) []string {
	dur := seconds(c.video.Duration)
	fade := seconds(c.video.FadeDuration)
	fps := strconv.Itoa(c.ffmpeg.FrameRate)

	background := ffmpeg.Input(
		fmt.Sprintf("color=c=%s:s=%dx%d:r=%s:d=%s", spec.Background.ffmpeg(), spec.Width, spec.Height, fps, dur),
		ffmpeg.KwArgs{"f": "lavfi"},
	)

	image := ffmpeg.Input(spec.ImagePath, ffmpeg.KwArgs{
		"loop":      "1",
		"framerate": fps,
		"t":         dur,
	}).
		Filter("format", ffmpeg.Args{"rgba"}).
		Filter("fade", ffmpeg.Args{}, ffmpeg.KwArgs{
			"t":     "in",
			"st":    "0",
			"d":     fade,
			"alpha": "1",
		}).
		Filter("fade", ffmpeg.Args{}, ffmpeg.KwArgs{
			"t":     "out",
			"st":    seconds(c.video.Duration - c.video.FadeDuration),
			"d":     fade,
			"alpha": "1",
		})

	video := background.
		Overlay(image, "", ffmpeg.KwArgs{
			"x": "(W-w)/2",
			"y": "(H-h)/2",
		}).
		Filter("ass", ffmpeg.Args{spec.CaptionFile})

	audio := ffmpeg.Input(spec.AudioPath, ffmpeg.KwArgs{"t": dur}).Audio()

	return ffmpeg.Output([]*ffmpeg.Stream{video, audio}, spec.OutputPath, ffmpeg.KwArgs{
		"c:v":      c.ffmpeg.Encoder,
		"preset":   c.ffmpeg.Preset,
		"crf":      strconv.Itoa(c.ffmpeg.CRF),
		"r":        fps,
		"threads":  strconv.Itoa(c.ffmpeg.Threads),
		"pix_fmt":  c.ffmpeg.PixelFormat,
		"c:a":      c.ffmpeg.AudioCodec,
		"t":        dur,
		"movflags": "+faststart",
	}).
		OverWriteOutput().
		GetArgs()
}
