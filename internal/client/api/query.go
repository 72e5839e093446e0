package api

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func pageValues(q models.PageQuery) url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func escape(id string) string {
	return url.PathEscape(id)
}
