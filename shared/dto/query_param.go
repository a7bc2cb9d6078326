package dto

import (
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries offset pagination and ordering for list queries.
// Offset is a literal row offset, applied as LIMIT :limit OFFSET :offset.
type QueryParams struct {
	Offset  int    `json:"from"     validate:"omitempty,gte=0"`
	Limit   int    `json:"size"     validate:"omitempty,gte=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the `from` and `size` request
// parameters, falling back to the defaults (0/10) when absent. A negative
// `from` or a non-positive `size` is rejected.
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	q.Offset = constant.DefaultValueFrom
	q.Limit = constant.DefaultValueSize

	if from := queryParams.Get(constant.RequestParamFrom); from != "" {
		fromInt, err := strconv.Atoi(from)
		if err != nil || fromInt < 0 {
			return failure.BadRequestFromString("invalid from parameter") //nolint:wrapcheck
		}

		q.Offset = fromInt
	}

	if size := queryParams.Get(constant.RequestParamSize); size != "" {
		sizeInt, err := strconv.Atoi(size)
		if err != nil || sizeInt < 1 {
			return failure.BadRequestFromString("invalid size parameter") //nolint:wrapcheck
		}

		q.Limit = sizeInt
	}

	return nil
}
