// Package handler holds the response strategies the router chooses from.
// A handler only reads the request it is given and never keeps it.
package handler

import (
	"fmt"

	"github.com/nhdewitt/tiny-httpserver/internal/request"
	"github.com/nhdewitt/tiny-httpserver/internal/response"
)

type Handler interface {
	Handle(req *request.Request) *response.Response
}

type htmlTemplate struct {
	status      string
	description string
	explanation string
}

func (ht htmlTemplate) render() []byte {
	return fmt.Appendf(nil, `<html>
	<head>
		<title>%s</title>
	</head>
	<body>
		<h1>%s</h1>
		<p>%s</p>
	</body>
</html>
`, ht.status, ht.description, ht.explanation)
}

var (
	notFoundPage = htmlTemplate{
		status:      "404 Not Found",
		description: "Not Found",
		explanation: "Nothing lives at this address.",
	}.render()
	badRequestPage = htmlTemplate{
		status:      "400 Bad Request",
		description: "Bad Request",
		explanation: "The request line could not be understood.",
	}.render()
)

// NotFound always answers 404 with the same page.
type NotFound struct{}

func (NotFound) Handle(_ *request.Request) *response.Response {
	return response.New(response.StatusNotFound, nil, notFoundPage)
}

// BadRequest answers 400 for requests whose request line was malformed.
type BadRequest struct{}

func (BadRequest) Handle(_ *request.Request) *response.Response {
	return response.New(response.StatusBadRequest, nil, badRequestPage)
}
