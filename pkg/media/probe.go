package media

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration returns the duration of a local media file in whole
// seconds, rounded. Requires ffprobe on PATH.
func ProbeDuration(path string) (int, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("failed to probe media file: %w", err)
	}

	var info probeFormat
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return 0, fmt.Errorf("failed to parse probe output: %w", err)
	}

	if info.Format.Duration == "" {
		return 0, fmt.Errorf("probe output has no duration")
	}

	seconds, err := strconv.ParseFloat(info.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", info.Format.Duration, err)
	}

	return int(math.Round(seconds)), nil
}
