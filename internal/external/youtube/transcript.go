package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/wonny/tickerpulse/pkg/httputil"
	"github.com/wonny/tickerpulse/pkg/logger"
	"github.com/wonny/tickerpulse/pkg/redis"
)

// Client fetches video transcripts via the Innertube API
// ⭐ SSOT: YouTube 호출은 이 클라이언트에서만
//
// Primary:  POST /next → engagement panel → POST /get_transcript
//           (works from datacenter IPs)
// Fallback: ANDROID /player → captionTracks → timedtext XML
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	languages  []string
	cache      *redis.Cache
	cacheTTL   time.Duration
}

// NewClient creates a new YouTube transcript client. cache may be nil
// (or backed by a disabled Redis client) to skip transcript caching.
func NewClient(httpClient *httputil.Client, baseURL string, languages []string, cache *redis.Cache, cacheTTL time.Duration, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://www.youtube.com"
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("module", "youtube"),
		baseURL:    baseURL,
		languages:  languages,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// FetchTranscript returns the plain-text transcript for a video.
// Fails when the video has no usable captions; callers treat that as
// "cannot analyze this video".
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	// Transcripts are immutable per video, so cache hits are always valid
	if c.cache != nil {
		var cached string
		if found, err := c.cache.Get(ctx, redis.TranscriptKey(videoID), &cached); err == nil && found {
			c.logger.WithField("video_id", videoID).Debug("Transcript cache hit")
			return cached, nil
		}
	}

	text, primaryErr := c.fetchViaEngagementPanel(ctx, videoID)
	if primaryErr != nil {
		c.logger.WithError(primaryErr).WithField("video_id", videoID).Debug("Engagement panel path failed, trying player")

		var playerErr error
		text, playerErr = c.fetchViaPlayer(ctx, videoID)
		if playerErr != nil {
			return "", fmt.Errorf("no captions available for %s: %w", videoID, playerErr)
		}
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, redis.TranscriptKey(videoID), text, c.cacheTTL); err != nil {
			c.logger.WithError(err).Warn("Failed to cache transcript")
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"video_id": videoID,
		"length":   len(text),
	}).Info("Transcript fetched")

	return text, nil
}

// getTranscriptTokenRE extracts the continuation token from a raw /next response
var getTranscriptTokenRE = regexp.MustCompile(`"getTranscriptEndpoint":\{"params":"([^"]+)"`)

// fetchViaEngagementPanel fetches a transcript via /next + /get_transcript
func (c *Client) fetchViaEngagementPanel(ctx context.Context, videoID string) (string, error) {
	visitorData := generateVisitorData()

	nextData, err := c.postInnertube(ctx, nextPath, map[string]interface{}{
		"videoId": videoID,
		"context": webContext(visitorData),
	})
	if err != nil {
		return "", fmt.Errorf("/next: %w", err)
	}

	token, err := extractTranscriptToken(nextData)
	if err != nil {
		return "", fmt.Errorf("token: %w", err)
	}

	transcriptData, err := c.postInnertube(ctx, getTranscriptPath, map[string]interface{}{
		"params":  token,
		"context": webContext(visitorData),
	})
	if err != nil {
		return "", fmt.Errorf("/get_transcript: %w", err)
	}

	var transcriptResp getTranscriptResp
	if err := json.Unmarshal(transcriptData, &transcriptResp); err != nil {
		return "", fmt.Errorf("decode transcript: %w", err)
	}

	text := joinSegments(transcriptResp)
	if text == "" {
		return "", errors.New("empty transcript segments")
	}
	return text, nil
}

// fetchViaPlayer uses the ANDROID /player endpoint and timedtext XML
func (c *Client) fetchViaPlayer(ctx context.Context, videoID string) (string, error) {
	body, err := json.Marshal(playerReq{
		VideoID: videoID,
		Context: playerCtx{
			Client: androidClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+playerPath+"?prettyPrint=false", strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("android player: %w", err)
	}
	defer resp.Body.Close()

	var parsed playerResp
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode player: %w", err)
	}

	if parsed.Captions == nil {
		if parsed.PlayabilityStatus != nil && parsed.PlayabilityStatus.Reason != "" {
			return "", fmt.Errorf("captions unavailable: %s", parsed.PlayabilityStatus.Reason)
		}
		return "", errors.New("no captions in player response")
	}

	tracks := parsed.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return "", errors.New("no caption tracks")
	}

	track, ok := pickBestTrack(tracks, c.languages)
	if !ok {
		return "", errors.New("all caption tracks require PoToken")
	}

	return c.fetchTimedText(ctx, track.BaseURL)
}

// fetchTimedText fetches and flattens a timedtext XML caption URL
func (c *Client) fetchTimedText(ctx context.Context, captionURL string) (string, error) {
	resp, err := c.httpClient.Get(ctx, captionURL)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text != "" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(text)
		}
	}
	return sb.String(), nil
}

// postInnertube POSTs a JSON payload to an Innertube endpoint with WEB
// client headers and returns the raw response body.
func (c *Client) postInnertube(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path+"?prettyPrint=false", strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Youtube-Client-Name", "1")
	req.Header.Set("X-Youtube-Client-Version", webVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 8*1024*1024))
}

// extractTranscriptToken pulls the /get_transcript continuation token
// out of a raw /next response. The params value is URL-encoded in the
// JSON; /get_transcript expects the decoded (raw base64) form.
func extractTranscriptToken(data []byte) (string, error) {
	m := getTranscriptTokenRE.FindSubmatch(data)
	if len(m) < 2 {
		return "", errors.New("getTranscriptEndpoint not found in engagement panels")
	}
	decoded, err := url.QueryUnescape(string(m[1]))
	if err != nil {
		return string(m[1]), nil
	}
	return decoded, nil
}

// joinSegments flattens a /get_transcript response into plain text
func joinSegments(resp getTranscriptResp) string {
	var sb strings.Builder
	for _, action := range resp.Actions {
		if action.UpdateEngagementPanelAction == nil {
			continue
		}
		segments := action.UpdateEngagementPanelAction.Content.
			TranscriptRenderer.Content.
			TranscriptSearchPanelRenderer.Body.
			TranscriptSegmentListRenderer.InitialSegments
		for _, seg := range segments {
			if seg.TranscriptSegmentRenderer == nil {
				continue
			}
			for _, run := range seg.TranscriptSegmentRenderer.Snippet.Runs {
				if run.Text == "" {
					continue
				}
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(run.Text)
			}
		}
	}
	return sb.String()
}

// needsPoToken reports whether a caption track URL requires a PoToken
// (browser-only); tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track: manual track in
// a preferred language, then auto-generated in a preferred language,
// then any English track, then anything usable.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}

	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}
