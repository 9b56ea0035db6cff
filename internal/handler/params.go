package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// parsePageParams は page.size / page.num を読む。未指定はnil。
// 範囲チェックはusecase側でやる。ここは形式だけ見る。
func parsePageParams(c echo.Context) (size *int, num *int, err error) {
	if v := c.QueryParam("page.size"); v != "" {
		s, perr := strconv.Atoi(v)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid page.size")
		}
		size = &s
	}
	if v := c.QueryParam("page.num"); v != "" {
		n, perr := strconv.Atoi(v)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid page.num")
		}
		num = &n
	}
	return size, num, nil
}

func parseBoolParam(c echo.Context, name string) (bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s", name)
	}
	return b, nil
}
