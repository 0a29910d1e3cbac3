package dto

// DidaskalosContext mirrors the session reference the frontend sends alongside
// a method-guidance question.
type DidaskalosContext struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Stage   string `json:"stage"`
}

type DidaskalosQueryRequest struct {
	Query   string            `json:"query" validate:"required"`
	Context DidaskalosContext `json:"context"`
}

type DidaskalosQueryResponse struct {
	Answer  string `json:"answer"`
	Warning string `json:"warning"`
}
