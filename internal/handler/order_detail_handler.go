package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse/internal/mapper"
	"warehouse/internal/usecase"
)

// /api/OrderDetails のAPI
type OrderDetailHandler struct {
	uc *usecase.OrderDetailUsecase
}

// DI
func NewOrderDetailHandler(uc *usecase.OrderDetailUsecase) *OrderDetailHandler {
	return &OrderDetailHandler{uc: uc}
}

func (h *OrderDetailHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/OrderDetails")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *OrderDetailHandler) list(c echo.Context) error {
	size, num, err := parsePageParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListOrderDetailsInput{
		PageSize: size,
		PageNum:  num,
	})
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateOrderDetails(out)
	return respond(c, http.StatusOK, out)
}

func (h *OrderDetailHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateOrderDetail(&out)
	return respond(c, http.StatusOK, out)
}

func (h *OrderDetailHandler) create(c echo.Context) error {
	var req mapper.OrderDetailCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateOrderDetail(&out)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/OrderDetails/%d", out.ID))
	return respond(c, http.StatusCreated, out)
}

func (h *OrderDetailHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var req mapper.OrderDetailUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderDetailHandler) remove(c echo.Context) error {
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
