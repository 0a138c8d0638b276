package feed

import (
	"fmt"
	"testing"

	"github.com/denis333rus/procuratyra/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_PageCount(t *testing.T) {
	tests := []struct {
		total, wantPages int
	}{
		{0, 1},
		{1, 1},
		{6, 1},
		{7, 1},
		{8, 2},
		{14, 2},
		{15, 3},
		{100, 15},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("total=%d", tt.total), func(t *testing.T) {
			_, pages, _ := Paginate(tt.total, 1, PerPage)
			assert.Equal(t, tt.wantPages, pages)
		})
	}
}

func TestPaginate_ClampsPageIntoRange(t *testing.T) {
	// 10 rows, K=7 -> 2 pages
	page, pages, offset := Paginate(10, 99, PerPage)
	assert.Equal(t, 2, pages)
	assert.Equal(t, 2, page)
	assert.Equal(t, 7, offset)

	page, _, offset = Paginate(10, -5, PerPage)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, offset)

	page, _, offset = Paginate(10, 0, PerPage)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, offset)
}

func TestPaginate_EmptyTable(t *testing.T) {
	page, pages, offset := Paginate(0, 3, PerPage)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, pages)
	assert.Equal(t, 0, offset)
}

func TestPaginate_ClampedPageAlwaysValid(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for req := -3; req <= 12; req++ {
			page, pages, offset := Paginate(total, req, PerPage)
			assert.GreaterOrEqual(t, page, 1)
			assert.LessOrEqual(t, page, pages)
			assert.Equal(t, (page-1)*PerPage, offset)
		}
	}
}

func TestGroupByDate_DatesDescendingAndUnique(t *testing.T) {
	items := []models.FeedItem{
		{Date: "2025-10-16", Time: "12:25", Title: "b"},
		{Date: "2025-10-17", Time: "09:29", Title: "a"},
		{Date: "2025-10-15", Time: "13:51", Title: "c"},
		{Date: "2025-10-17", Time: "15:26", Title: "d"},
		{Date: "2025-10-16", Time: "14:26", Title: "e"},
	}

	groups := GroupByDate(items)
	require.Len(t, groups, 3)

	assert.Equal(t, "2025-10-17", groups[0].Date)
	assert.Equal(t, "2025-10-16", groups[1].Date)
	assert.Equal(t, "2025-10-15", groups[2].Date)

	for i := 1; i < len(groups); i++ {
		assert.Greater(t, groups[i-1].Date, groups[i].Date)
	}
}

func TestGroupByDate_TimesDescendingWithinDate(t *testing.T) {
	items := []models.FeedItem{
		{Date: "2025-10-17", Time: "09:29"},
		{Date: "2025-10-17", Time: "15:26"},
		{Date: "2025-10-17", Time: "11:52"},
	}

	groups := GroupByDate(items)
	require.Len(t, groups, 1)

	times := groups[0].Items
	require.Len(t, times, 3)
	assert.Equal(t, "15:26", times[0].Time)
	assert.Equal(t, "11:52", times[1].Time)
	assert.Equal(t, "09:29", times[2].Time)
}

func TestGroupByDate_StableForEqualKeys(t *testing.T) {
	items := []models.FeedItem{
		{Date: "2025-10-17", Time: "10:00", Title: "first"},
		{Date: "2025-10-17", Time: "10:00", Title: "second"},
	}

	groups := GroupByDate(items)
	require.Len(t, groups, 1)
	assert.Equal(t, "first", groups[0].Items[0].Title)
	assert.Equal(t, "second", groups[0].Items[1].Title)
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil))
}

func TestGroupByDate_KeepsAllItems(t *testing.T) {
	var items []models.FeedItem
	for i := 0; i < 10; i++ {
		items = append(items, models.FeedItem{
			Date: fmt.Sprintf("2025-10-%02d", 15+i%3),
			Time: fmt.Sprintf("%02d:00", i),
		})
	}

	groups := GroupByDate(items)
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	assert.Equal(t, len(items), n)
}
