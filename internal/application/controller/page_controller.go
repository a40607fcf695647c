package controller

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Title       string
	ContextPath string
}

// PageController serves the browser client of the relay
type PageController struct {
	api  *echo.Group
	page []byte
}

// NewPageController renders the page once; contextPath prefixes the API calls it makes.
func NewPageController(api *echo.Group, contextPath string) (*PageController, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageData{Title: "Weather API", ContextPath: contextPath}); err != nil {
		return nil, err
	}
	return &PageController{api: api, page: buf.Bytes()}, nil
}

// InitPageRoutes initializes the page route
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("/", controller.Index)
}

// Index serves the search page
func (controller *PageController) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, controller.page)
}
