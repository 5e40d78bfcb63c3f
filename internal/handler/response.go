package handler

// Response is the envelope every endpoint replies with. Data and Count
// appear on success, Error on failure, Message on either when there is
// something short to say. Error strings stay generic; internals are
// never exposed.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(data any) Response { return Response{Success: true, Data: data} }

func okMsg(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func okList(data any, count int) Response {
	return Response{Success: true, Count: &count, Data: data}
}

func fail(errMsg string) Response { return Response{Success: false, Error: errMsg} }
