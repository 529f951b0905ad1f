package dto

// RewriteRequest is the body of POST /AI. Prompt is checked by the handler so
// a missing prompt gets the original "Missing prompt" reply.
type RewriteRequest struct {
	Prompt string `json:"prompt"`
}

type RewriteResponse struct {
	Rewritten string `json:"rewritten"`
}

type ToneRewriteRequest struct {
	Mode string `json:"mode" binding:"required"` // normalized by model.ParseMode
	Text string `json:"text" binding:"required,max=20000"`
}

type QuoteResponse struct {
	Mode  string `json:"mode"`
	Quote string `json:"quote"`
}
