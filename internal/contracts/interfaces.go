package contracts

import "context"

// TranscriptProvider fetches the plain-text transcript of a video
// ⭐ SSOT: 트랜스크립트 제공자 인터페이스
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// RatingProvider fetches an analyst rating record for a single ticker.
// Any lookup failure surfaces as an error; callers in the batch loop
// absorb it so one bad ticker never aborts a batch.
type RatingProvider interface {
	FetchRating(ctx context.Context, symbol string) (*Rating, error)
}
