package types

type ChatRequest struct {
	ProviderSpec   string   `json:"provider"`
	PersonaID      string   `json:"personaId"`
	Message        string   `json:"message"`
	ThreadID       string   `json:"threadId,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	SimulateTyping *bool    `json:"simulateTyping,omitempty"`
}

type ChatResponse struct {
	Text     string `json:"text"`
	ThreadID string `json:"threadId"`
}

type GetPersonaRequest struct {
	ID string `path:"id"`
}

type CreatePersonaRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Style      string `json:"style"`
	Boundaries string `json:"boundaries"`
	Goals      string `json:"goals"`
}

type UpdatePersonaRequest struct {
	ID         string `path:"id" json:"-"`
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Style      string `json:"style"`
	Boundaries string `json:"boundaries"`
	Goals      string `json:"goals"`
}

type GetThreadRequest struct {
	ID string `path:"id"`
}

type ThreadMessagesRequest struct {
	ID string `path:"id"`
}

type UpdateThreadSummaryRequest struct {
	ID      string `path:"id" json:"-"`
	Summary string `json:"summary"`
}

type DeleteThreadRequest struct {
	ID string `path:"id"`
}

type DeleteMessageRequest struct {
	ID int64 `path:"id"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
