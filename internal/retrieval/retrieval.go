package retrieval

import "context"

// Retriever returns a short grounding snippet for a query.
// Implementations may call a knowledge-base service or return nothing.
type Retriever interface {
	Retrieve(ctx context.Context, query string) (string, error)
}

// Noop is the retriever used when no knowledge base is configured.
type Noop struct{}

func (Noop) Retrieve(context.Context, string) (string, error) {
	return "", nil
}
