package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetListParams(c *gin.Context) (q string, page int, pageSize int, err error) {
	q = c.Query("q")
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return "", 0, 0, err
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		return "", 0, 0, err
	}
	return q, page, pageSize, nil
}

// GetBoolParam parses an optional boolean query parameter; nil means the
// parameter was absent.
func GetBoolParam(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
