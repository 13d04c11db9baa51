package response

// Body is the error envelope returned by middleware and handlers that do not
// use the fres success envelope.
type Body struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(code, message string, data interface{}) Body {
	return Body{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
