package router

import (
	"io"
	"strings"

	"github.com/nhdewitt/tiny-httpserver/internal/handler"
	"github.com/nhdewitt/tiny-httpserver/internal/request"
	"github.com/nhdewitt/tiny-httpserver/internal/response"
)

// Router picks exactly one handler per request: anything but GET goes to
// NotFound, a GET whose first path segment is "api" goes to API, and every
// other GET goes to Static.
type Router struct {
	API        handler.Handler
	Static     handler.Handler
	NotFound   handler.Handler
	BadRequest handler.Handler
}

func New(publicDir, dataDir string) *Router {
	return &Router{
		API:        handler.NewAPI(dataDir),
		Static:     handler.NewStatic(publicDir),
		NotFound:   handler.NotFound{},
		BadRequest: handler.BadRequest{},
	}
}

func (rt *Router) Select(req *request.Request) handler.Handler {
	if req.Method != request.MethodGet {
		return rt.NotFound
	}

	segments := strings.Split(req.Resource.Path, "/")
	if len(segments) > 1 && segments[1] == "api" {
		return rt.API
	}
	return rt.Static
}

// Route runs the selected handler and writes its response to w. Write
// errors are returned to the caller.
func (rt *Router) Route(req *request.Request, w io.Writer) (*response.Response, error) {
	resp := rt.Select(req).Handle(req)
	return resp, response.NewWriter(w).Send(resp)
}

// RouteError answers a request that could not be parsed with 400.
func (rt *Router) RouteError(w io.Writer) (*response.Response, error) {
	resp := rt.BadRequest.Handle(nil)
	return resp, response.NewWriter(w).Send(resp)
}
