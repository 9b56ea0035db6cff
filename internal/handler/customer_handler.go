package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse/internal/mapper"
	"warehouse/internal/patch"
	"warehouse/internal/usecase"
)

// /api/Customers のAPI
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/Customers")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.PATCH("/:id", h.patch)
	g.DELETE("/:id", h.remove)
}

func (h *CustomerHandler) list(c echo.Context) error {
	size, num, err := parsePageParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	withOrders, err := parseBoolParam(c, "withOrders")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	withOrderDetails, err := parseBoolParam(c, "withOrderDetails")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListCustomersInput{
		FirstName:        c.QueryParam("fname"),
		LastName:         c.QueryParam("lname"),
		FirstNamePrefix:  c.QueryParam("fname_start_with"),
		LastNamePrefix:   c.QueryParam("lname_start_with"),
		WithOrders:       withOrders,
		WithOrderDetails: withOrderDetails,
		PageSize:         size,
		PageNum:          num,
	})
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateCustomers(out)
	return respond(c, http.StatusOK, out)
}

func (h *CustomerHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	withOrders, err := parseBoolParam(c, "withOrders")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	withOrderDetails, err := parseBoolParam(c, "withOrderDetails")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Get(c.Request().Context(), id, withOrders, withOrderDetails)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateCustomer(&out)
	return respond(c, http.StatusOK, out)
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req mapper.CustomerCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	assembler(c).DecorateCustomer(&out)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/Customers/%d", out.ID))
	return respond(c, http.StatusCreated, out)
}

func (h *CustomerHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var req mapper.CustomerUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHandler) patch(c echo.Context) error {
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

func (h *CustomerHandler) remove(c echo.Context) error {
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
