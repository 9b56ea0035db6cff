package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse/internal/mapper"
	"warehouse/internal/usecase"
)

// /api/Orders のAPI
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/Orders")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *OrderHandler) list(c echo.Context) error {
	size, num, err := parsePageParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	withOrderDetails, err := parseBoolParam(c, "withOrderDetails")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		FirstName:        c.QueryParam("fname"),
		LastName:         c.QueryParam("lname"),
		Address:          c.QueryParam("address"),
		WithOrderDetails: withOrderDetails,
		PageSize:         size,
		PageNum:          num,
	})
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateOrders(out)
	return respond(c, http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	withOrderDetails, err := parseBoolParam(c, "withOrderDetails")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Get(c.Request().Context(), id, withOrderDetails)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateOrder(&out)
	return respond(c, http.StatusOK, out)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req mapper.OrderCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateOrder(&out)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/Orders/%d", out.ID))
	return respond(c, http.StatusCreated, out)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var req mapper.OrderUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	//消した実体を返す
	return respond(c, http.StatusOK, out)
}
