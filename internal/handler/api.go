package handler

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nhdewitt/tiny-httpserver/internal/headers"
	"github.com/nhdewitt/tiny-httpserver/internal/request"
	"github.com/nhdewitt/tiny-httpserver/internal/response"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	ordersFile     = "orders.json"
	ordersEndpoint = "/api/shipping/orders"
	jsonType       = "application/json"
)

// API serves JSON documents read from DataDir.
//
//	/api/shipping/orders            every order in orders.json
//	/api/shipping/orders?status=X   orders whose order_status is X
//	/api/<anything else>            an index of the endpoints above
type API struct {
	DataDir string
}

func NewAPI(dataDir string) *API {
	return &API{DataDir: dataDir}
}

func (a *API) Handle(req *request.Request) *response.Response {
	target, rawQuery, _ := strings.Cut(req.Resource.Path, "?")

	if strings.TrimSuffix(target, "/") == ordersEndpoint {
		return a.orders(rawQuery)
	}
	return a.index(target)
}

func (a *API) orders(rawQuery string) *response.Response {
	data, err := os.ReadFile(filepath.Join(a.DataDir, ordersFile))
	if err != nil {
		return jsonError(response.StatusInternalServerError, "orders unavailable")
	}
	if !gjson.ValidBytes(data) {
		return jsonError(response.StatusInternalServerError, "orders file is not valid JSON")
	}

	q, err := url.ParseQuery(rawQuery)
	if err == nil {
		if status := q.Get("status"); status != "" {
			res := gjson.GetBytes(data, `#(order_status==`+strconv.Quote(status)+`)#`)
			data = []byte(res.Raw)
			if len(data) == 0 {
				data = []byte("[]")
			}
		}
	}

	return jsonResponse(response.StatusOK, data)
}

func (a *API) index(target string) *response.Response {
	doc, _ := sjson.Set("", "path", target)
	doc, _ = sjson.Set(doc, "endpoints.-1", ordersEndpoint)
	doc, _ = sjson.Set(doc, "filters.status", "order_status equality")
	return jsonResponse(response.StatusOK, []byte(doc))
}

func jsonError(code response.StatusCode, msg string) *response.Response {
	doc, _ := sjson.Set("", "error", msg)
	doc, _ = sjson.Set(doc, "status", int(code))
	return jsonResponse(code, []byte(doc))
}

func jsonResponse(code response.StatusCode, body []byte) *response.Response {
	h := headers.NewFields()
	h.Set("Content-Type", jsonType)
	return response.New(code, h, body)
}
