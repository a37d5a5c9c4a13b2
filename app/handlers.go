package app

import (
	"errors"
	"net/http"

	"github.com/km-arc/go-beanfactory/framework/actor"
	"github.com/km-arc/go-beanfactory/framework/container"
	gohttp "github.com/km-arc/go-beanfactory/framework/http"
	"github.com/km-arc/go-beanfactory/framework/routing"
)

// Handlers serves the demo over HTTP.
type Handlers struct {
	factory *container.Factory
	api     *actor.Addr[*ConfigApi]
}

// NewHandlers binds the handlers to a factory and a ConfigApi address. api
// may be nil.
func NewHandlers(f *container.Factory, api *actor.Addr[*ConfigApi]) *Handlers {
	return &Handlers{factory: f, api: api}
}

// Routes mounts:
//
//	GET /api/v1/beans
//	GET /api/v1/config/{key}
//	PUT /api/v1/config/{key}   {"value": "..."}
func (h *Handlers) Routes(r *routing.Router) {
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/beans", h.ListBeans)
		api.Get("/config/{key}", h.GetConfig)
		api.Put("/config/{key}", h.PutConfig)
	})
}

type putConfigBody struct {
	Value string `json:"value" validate:"required,max=4096"`
}

// ListBeans returns every registered definition key.
func (h *Handlers) ListBeans(w http.ResponseWriter, r *http.Request) {
	keys := h.factory.Keys(r.Context())
	if keys == nil {
		keys = []string{}
	}
	gohttp.NewResponse(w).Success(keys)
}

func (h *Handlers) GetConfig(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)
	key := req.RouteParam("key")

	result, err := h.send(r, QueryConfig{Key: key})
	if err != nil {
		h.fail(res, err)
		return
	}
	if !result.Found {
		res.NotFound("No value for key " + key + ".")
		return
	}
	res.Success(map[string]string{"key": key, "value": result.Value})
}

func (h *Handlers) PutConfig(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)
	key := req.RouteParam("key")

	var body putConfigBody
	bag, err := req.BindValid(&body)
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	if bag.Has() {
		res.ValidationError(bag)
		return
	}

	if _, err := h.send(r, SetConfig{Key: key, Value: body.Value}); err != nil {
		h.fail(res, err)
		return
	}
	res.Success(map[string]string{"key": key, "value": body.Value})
}

func (h *Handlers) send(r *http.Request, msg any) (ConfigResult, error) {
	if h.api == nil {
		return ConfigResult{}, ErrConfigServiceMissing
	}
	return actor.Request[ConfigResult](r.Context(), h.api, msg)
}

func (h *Handlers) fail(res *gohttp.Response, err error) {
	switch {
	case errors.Is(err, ErrConfigServiceMissing), errors.Is(err, actor.ErrStopped):
		res.ServiceUnavailable(err.Error())
	default:
		res.Error(http.StatusInternalServerError, err.Error())
	}
}
