// Package feed turns the flat, newest-first news table into the paged,
// date-grouped structure the landing page renders.
package feed

import (
	"sort"

	"github.com/denis333rus/procuratyra/internal/models"
)

// PerPage is the fixed feed page size.
const PerPage = 7

// SearchCap bounds how many rows a search may return; search results are
// never paginated.
const SearchCap = 100

// DateGroup is one date with its items, times descending.
type DateGroup struct {
	Date  string
	Items []models.FeedItem
}

// Paginate clamps a requested 1-based page against the total row count and
// returns the effective page, the page count and the row offset.
// pages is always at least 1, even for an empty table.
func Paginate(total, page, perPage int) (effective, pages, offset int) {
	pages = (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return page, pages, (page - 1) * perPage
}

// GroupByDate partitions items by their date field, orders the distinct
// dates descending and, within each date, orders items by time descending.
// Dates and times are free text, so ordering is plain string comparison.
func GroupByDate(items []models.FeedItem) []DateGroup {
	byDate := make(map[string][]models.FeedItem)
	var dates []string
	for _, it := range items {
		if _, seen := byDate[it.Date]; !seen {
			dates = append(dates, it.Date)
		}
		byDate[it.Date] = append(byDate[it.Date], it)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		group := byDate[d]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Time > group[j].Time
		})
		groups = append(groups, DateGroup{Date: d, Items: group})
	}
	return groups
}
