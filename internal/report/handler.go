package report

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	httperr "github.com/aevon-lab/ebs/internal/core/errors"
	"github.com/aevon-lab/ebs/internal/core/query"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidOption    = "Invalid report option"
	msgUnknownDimension = "Unknown dimension"
	msgReportFailed     = "Failed to run report"
)

// ReportHandler handles GET /v1/reports.
// List parameters accept repeated keys and/or comma-separated values.
func (s *Service) ReportHandler(c *gin.Context) {
	raw, malformed := parseReportQuery(c.Request.URL.Query())
	if len(malformed) > 0 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidOptionError,
			Message:   msgInvalidOption,
			Details:   gin.H{"names": malformed},
		})
		return
	}

	ctx := c.Request.Context()
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	resp, err := s.RunReport(ctx, raw)
	if err != nil {
		writeReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func writeReportError(c *gin.Context, err error) {
	var invalid *query.InvalidOptionError
	var unknown *query.UnknownDimensionError

	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidOptionError,
			Message:   msgInvalidOption,
			Details:   gin.H{"names": invalid.Names, "reason": err.Error()},
		})
	case errors.As(err, &unknown):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnknownDimensionError,
			Message:   msgUnknownDimension,
			Details:   gin.H{"name": unknown.Name},
		})
	default:
		slog.Error("[Report] Report failed", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msgReportFailed,
		})
	}
}

// parseReportQuery converts query parameters into raw report options.
// Known keys are typed; unknown keys are passed through so option validation
// reports them. The second result lists known keys whose values failed to parse.
func parseReportQuery(values url.Values) (map[string]any, []string) {
	raw := make(map[string]any, len(values))
	var malformed []string

	for key, vals := range values {
		var (
			value any
			ok    = true
		)

		switch key {
		case query.OptOffset, query.OptLimit:
			value, ok = parseInt(lastValue(vals))
		case query.OptGroupBy, query.OptOrderBy, "device_types":
			value = splitList(vals)
		case query.OptStartDate, query.OptEndDate:
			value, ok = parseTime(lastValue(vals))
		case "clients", "client_groups", "categories":
			value, ok = parseIntList(splitList(vals))
		case "valid":
			value, ok = parseBool(lastValue(vals))
		default:
			value = lastValue(vals)
		}

		if !ok {
			malformed = append(malformed, key)
			continue
		}
		raw[key] = value
	}

	sort.Strings(malformed)
	return raw, malformed
}

func lastValue(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[len(vals)-1])
}

// splitList flattens repeated and comma-separated values, dropping empty entries.
func splitList(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseInt(s string) (any, bool) {
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return n, true
}

func parseIntList(parts []string) (any, bool) {
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func parseTime(s string) (any, bool) {
	if s == "" {
		return nil, true
	}
	// An unescaped "+" offset arrives as a space.
	t, err := time.Parse(time.RFC3339, strings.ReplaceAll(s, " ", "+"))
	if err != nil {
		return nil, false
	}
	return t, true
}

func parseBool(s string) (any, bool) {
	if s == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, false
	}
	return b, true
}
