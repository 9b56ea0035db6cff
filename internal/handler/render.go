package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"warehouse/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

const (
	mimeYAML     = "application/x-yaml"
	mimeYAMLAlt  = "application/yaml"
	mimeYAMLText = "text/yaml"
)

// respond はAcceptヘッダでJSON（既定）/XML/YAMLを出し分ける。
func respond(c echo.Context, status int, v interface{}) error {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	switch {
	case strings.Contains(accept, echo.MIMEApplicationXML) || strings.Contains(accept, echo.MIMETextXML):
		return c.XML(status, v)
	case strings.Contains(accept, mimeYAML) || strings.Contains(accept, mimeYAMLAlt) || strings.Contains(accept, mimeYAMLText):
		b, err := yamlBody(v)
		if err != nil {
			return writeError(c, err)
		}
		return c.Blob(status, mimeYAML, b)
	default:
		return c.JSON(status, v)
	}
}

// yamlBody はJSONを経由してYAMLへ落とす。
// decimalなどTextMarshalerしか持たない型の表現をJSONと揃えるため。
func yamlBody(v interface{}) ([]byte, error) {
	jb, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree interface{}
	if err := json.Unmarshal(jb, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
