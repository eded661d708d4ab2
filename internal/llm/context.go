package llm

import "context"

// Purpose labels why a request was made. It is stored with every logged
// request and is the filter for `mathworld llm list -p`.
type Purpose string

const (
	PurposeProblem Purpose = "problem-gen"
	PurposeStory   Purpose = "story"
	PurposePreview Purpose = "preview"

	purposeUnknown Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose attaches a purpose label to ctx.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// WithDefaultPurpose attaches p unless ctx already carries a purpose.
func WithDefaultPurpose(ctx context.Context, p Purpose) context.Context {
	if PurposeFrom(ctx) != purposeUnknown {
		return ctx
	}
	return WithPurpose(ctx, p)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok && p != "" {
		return p
	}
	return purposeUnknown
}
