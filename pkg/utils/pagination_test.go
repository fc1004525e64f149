package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePageQuery(t *testing.T) {
	q := NormalizePageQuery(0, -3)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 0, q.Limit)

	q = NormalizePageQuery(4, 25)
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, 25, q.Limit)
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 30, PageQuery{Page: 4, Limit: 10}.Offset())
	assert.Equal(t, 0, PageQuery{Page: 7, Limit: 0}.Offset())
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(41, PageQuery{Page: 3, Limit: 10})
	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, int64(41), meta.TotalCount)
	assert.Equal(t, 5, meta.TotalPages)

	exact := NewPageMeta(40, PageQuery{Page: 1, Limit: 10})
	assert.Equal(t, 4, exact.TotalPages)

	unlimited := NewPageMeta(17, PageQuery{Page: 1, Limit: 0})
	assert.Equal(t, 1, unlimited.Page)
	assert.Equal(t, 17, unlimited.Limit)
	assert.Equal(t, 1, unlimited.TotalPages)
}
