package report

import "github.com/aevon-lab/ebs/internal/core/query"

// Response is the body of a successful report request.
type Response struct {
	Rows       []query.Row      `json:"rows"`
	Pagination query.Pagination `json:"pagination"`
}
