package serve

const (
	codeInvalidFormat = "invalid_format"
	codeUnknownError  = "unknown_error"
)

// resultMessage is the reply envelope shared by every command.
type resultMessage struct {
	ID      int           `json:"id"`
	Type    string        `json:"type"`
	Success bool          `json:"success"`
	Result  any           `json:"result,omitempty"`
	Error   *errorMessage `json:"error,omitempty"`
}

type errorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func successMessage(id int, result any) resultMessage {
	return resultMessage{ID: id, Type: "result", Success: true, Result: result}
}

func failureMessage(id int, code, message string) resultMessage {
	return resultMessage{
		ID:      id,
		Type:    "result",
		Success: false,
		Error:   &errorMessage{Code: code, Message: message},
	}
}
