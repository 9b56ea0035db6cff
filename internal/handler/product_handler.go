package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"warehouse/internal/hateoas"
	"warehouse/internal/mapper"
	"warehouse/internal/patch"
	"warehouse/internal/usecase"
)

// /api/Products のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/Products")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.PATCH("/:id", h.patch)
	g.DELETE("/:id", h.remove)
}

func assembler(c echo.Context) *hateoas.Assembler {
	return hateoas.NewAssembler(c.Scheme(), c.Request().Host)
}

func (h *ProductHandler) list(c echo.Context) error {
	size, num, err := parsePageParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	in := usecase.ListProductsInput{
		Label:    c.QueryParam("label"),
		PageSize: size,
		PageNum:  num,
	}

	if v := c.QueryParam("lprice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lprice"})
		}
		in.LPrice = &d
	}
	if v := c.QueryParam("gprice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid gprice"})
		}
		in.GPrice = &d
	}

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateProducts(out)
	return respond(c, http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateProduct(&out)
	return respond(c, http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req mapper.ProductCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateProduct(&out)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/Products/%d", out.ID))
	return respond(c, http.StatusCreated, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var req mapper.ProductUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var doc patch.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid patch document"})
	}

	if err := h.uc.Patch(c.Request().Context(), id, doc); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
