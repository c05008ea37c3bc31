package types

// ContentItem is one drawn sentence plus the mood category it came from.
// The category drives both the on-video text and the media keyword matching.
type ContentItem struct {
	Sentence string `json:"sentence"`
	Category string `json:"category"`
}

// MediaCandidate is one search hit from a stock-media provider, already
// resolved to a direct download URL.
type MediaCandidate struct {
	Provider string  `json:"provider"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"` // seconds, 0 if unknown
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	URL      string  `json:"url"`
}

// CaptionBundle holds the caption lines and hashtags for one post.
// The caption never repeats the on-video sentence.
type CaptionBundle struct {
	Lines    []string `json:"lines"`    // 1-2 short caption lines
	Hashtags []string `json:"hashtags"` // 10-15 unique, each "#"-prefixed
}

// Text renders the bundle the way it is pasted into a post: caption lines,
// a blank line, then the hashtags space-joined.
func (b CaptionBundle) Text() string {
	out := ""
	for i, line := range b.Lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	out += "\n\n"
	for i, tag := range b.Hashtags {
		if i > 0 {
			out += " "
		}
		out += tag
	}
	return out
}

// RunResult is the outcome of one pipeline invocation.
type RunResult struct {
	RunID       string `json:"run_id"`
	Ran         bool   `json:"ran"`
	Skipped     bool   `json:"skipped"`
	Sentence    string `json:"sentence"`
	Category    string `json:"category"`
	VideoPath   string `json:"video_path"`
	CaptionPath string `json:"caption_path"`
	Err         error  `json:"-"`
}
