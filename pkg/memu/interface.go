package memu

import "context"

// IMemU defines the memory service operations the demos depend on.
// Implementations are safe for concurrent use.
type IMemU interface {
	// MemorizeConversation ships conversation turns to the provider for
	// ingestion into its hierarchical store.
	MemorizeConversation(ctx context.Context, req MemorizeRequest) (*MemorizeResponse, error)

	// Retrieve queries stored context. The method field selects the
	// provider-side embedding or language-model pipeline.
	Retrieve(ctx context.Context, req RetrieveRequest) (*RetrieveResponse, error)
}
