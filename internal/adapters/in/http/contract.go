package http

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"freight/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// docsInstance is the swag registry name the Swagger UI reads doc.json from.
const docsInstance = "freight"

// contract is the embedded OpenAPI document every /api/v1 request is
// checked against before it reaches a handler.
type contract struct {
	doc     *openapi3.T
	options openapi3filter.Options
}

// apiDoc serves the contract to swag.
type apiDoc string

func (d apiDoc) ReadDoc() string { return string(d) }

var loadContract = sync.OnceValues(func() (*contract, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI contract: %w", err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("render OpenAPI contract: %w", err)
	}
	swag.Register(docsInstance, apiDoc(raw))

	// Keep 400 messages to the failing field, without the schema dump.
	openapi3.SchemaErrorDetailsDisabled = true

	return &contract{
		doc: doc,
		options: openapi3filter.Options{
			// Identity is checked by requireAppUser before validation runs.
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}, nil
})

// docsHandler serves the Swagger UI and doc.json under /swagger/.
func (c *contract) docsHandler() echo.HandlerFunc {
	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docsInstance))
}

// validateRequest rejects requests whose parameters or body break the
// contract with 400. Routes the contract does not declare pass through.
func (c *contract) validateRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		route, pathParams, ok := c.route(ctx)
		if !ok {
			return next(ctx)
		}

		req := ctx.Request()
		err := openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options:    &c.options,
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return next(ctx)
	}
}

// route maps the matched echo route, e.g. /api/v1/loads/:loadId, onto the
// contract's path template /loads/{loadId}.
func (c *contract) route(ctx echo.Context) (*routers.Route, map[string]string, bool) {
	segments := strings.Split(strings.TrimPrefix(ctx.Path(), APIBasePath), "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	template := strings.Join(segments, "/")

	item := c.doc.Paths.Find(template)
	if item == nil {
		return nil, nil, false
	}
	method := ctx.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, nil, false
	}

	names, values := ctx.ParamNames(), ctx.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		params[name] = values[i]
	}
	return &routers.Route{
		Spec:      c.doc,
		Path:      template,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, params, true
}
