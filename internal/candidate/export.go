package candidate

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/guestradar/guestradar/pkg/pagination"
)

// maxExportRows bounds a single CSV export.
const maxExportRows = 10_000

var exportHeader = []string{
	"Name", "Social Handle", "Platform", "Follower Count",
	"Region", "Topics", "Description", "Is Recommended", "Is Favorite",
}

// ExportCSV streams every candidate matching the filter as CSV, in the
// filter's sort order. The same predicate drives the list endpoint, so an
// export always mirrors what the grid shows.
func (service *Service) ExportCSV(context context.Context, filter Filter, writer io.Writer) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	candidates, _, err := service.repo.ListCandidates(context, filter, pagination.Params{Page: 1, Limit: maxExportRows})
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(exportHeader); err != nil {
		return err
	}

	for _, c := range candidates {
		record := []string{
			c.Name,
			c.SocialHandle,
			c.Platform,
			strconv.Itoa(c.FollowerCount),
			c.Region,
			strings.Join(c.Topics, ";"),
			c.Description,
			strconv.FormatBool(c.IsRecommended),
			strconv.FormatBool(c.IsFavorite),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
