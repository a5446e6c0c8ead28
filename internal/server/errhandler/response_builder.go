package errhandler

type Response struct {
	Error string `json:"error"`
}

var ResponseBuilder = func(_ int, msg string) any {
	return Response{Error: msg}
}
