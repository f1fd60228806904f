package productrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goloja/internal/domain"
)

func TestBuildWhere(t *testing.T) {
	where, args := buildWhere(domain.ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	lo, hi := 100.0, 200.0
	where, args = buildWhere(domain.ProductFilter{
		Match:       " camiseta ",
		CategoryIDs: []int64{15, 24},
		PriceMin:    &lo,
		PriceMax:    &hi,
	})

	assert.Equal(t,
		" WHERE (name ILIKE $1 OR description ILIKE $1) AND category_ids && $2::bigint[] AND price >= $3 AND price <= $4",
		where)
	assert.Len(t, args, 4)
	assert.Equal(t, "%camiseta%", args[0])
	assert.Equal(t, 100.0, args[2])
	assert.Equal(t, 200.0, args[3])
}
