package memu

// DefaultBaseURL is the hosted memory service endpoint.
const DefaultBaseURL = "https://api.memu.so"

// Retrieval methods supported by the provider. The provider does all
// ranking; the client only selects which pipeline runs.
const (
	MethodEmbedding = "embedding"
	MethodLLM       = "llm"
)

// Message is one conversation turn in provider wire format.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MemorizeRequest is the body for POST /api/v1/memory/memorize.
type MemorizeRequest struct {
	Conversation []Message `json:"conversation"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	AgentID      string    `json:"agent_id,omitempty"`
	AgentName    string    `json:"agent_name,omitempty"`
}

// MemorizeResponse reports the provider-side ingestion task.
type MemorizeResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// RetrieveRequest is the body for POST /api/v1/memory/retrieve.
type RetrieveRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
	Method string `json:"method,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// Category is an aggregated summary in the provider's memory hierarchy.
type Category struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// Item is an extracted fact in the provider's memory hierarchy.
type Item struct {
	MemoryID string  `json:"memory_id"`
	Category string  `json:"category,omitempty"`
	Summary  string  `json:"summary"`
	Score    float64 `json:"score,omitempty"`
}

// Resource points at raw ingested data in the provider's memory hierarchy.
type Resource struct {
	ResourceID string `json:"resource_id"`
	URL        string `json:"url,omitempty"`
	Caption    string `json:"caption,omitempty"`
}

// RetrieveResponse is the ordered context returned by the provider.
type RetrieveResponse struct {
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
	Resources  []Resource `json:"resources"`
}
