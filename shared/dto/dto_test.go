package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/shared/constant"
	"shareit/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "booker_id", Operator: dto.FilterOperatorEq, Value: int64(2), Table: "bookings"},
			wantWhere: "bookings.booker_id = :booker_id",
			wantArgs:  map[string]any{"booker_id": int64(2)},
		},
		{
			name:      "less",
			filter:    dto.Filter{Field: "start_date", Operator: dto.FilterOperatorLess, Value: "2026-01-01", Table: "bookings"},
			wantWhere: "bookings.start_date < :start_date",
			wantArgs:  map[string]any{"start_date": "2026-01-01"},
		},
		{
			name:      "greater",
			filter:    dto.Filter{Field: "end_date", Operator: dto.FilterOperatorGreater, Value: "2026-01-01", Table: "bookings"},
			wantWhere: "bookings.end_date > :end_date",
			wantArgs:  map[string]any{"end_date": "2026-01-01"},
		},
		{
			name:      "like lowercases both sides",
			filter:    dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "drill", Table: "items"},
			wantWhere: "LOWER(items.name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%drill%"},
		},
		{
			name:      "eq with custom arg name",
			filter:    dto.Filter{ArgName: "state", Field: "status", Operator: dto.FilterOperatorEq, Value: "WAITING", Table: "bookings"},
			wantWhere: "bookings.status = :state",
			wantArgs:  map[string]any{"state": "WAITING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "available", Operator: dto.FilterOperatorEq, Value: true, Table: "items"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "name", Field: "name", Operator: dto.FilterOperatorLike, Value: "drill", Table: "items"},
					dto.Filter{ArgName: "description", Field: "description", Operator: dto.FilterOperatorLike, Value: "drill", Table: "items"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t,
		"(items.available = :available AND (LOWER(items.name) LIKE LOWER(:name)  OR LOWER(items.description) LIKE LOWER(:description) ))",
		where)
	assert.Equal(t, map[string]any{
		"available":   true,
		"name":        "%drill%",
		"description": "%drill%",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	where, args := (&dto.FilterGroup{}).GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    map[string]string
		expected dto.QueryParams
		wantErr  bool
	}{
		{
			name:  "explicit from and size",
			query: map[string]string{"from": "20", "size": "5"},
			expected: dto.QueryParams{
				Offset: 20,
				Limit:  5,
			},
		},
		{
			name:  "defaults applied",
			query: map[string]string{},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueFrom,
				Limit:  constant.DefaultValueSize,
			},
		},
		{
			name:  "zero from is valid",
			query: map[string]string{"from": "0", "size": "1"},
			expected: dto.QueryParams{
				Offset: 0,
				Limit:  1,
			},
		},
		{
			name:    "negative from rejected",
			query:   map[string]string{"from": "-1"},
			wantErr: true,
		},
		{
			name:    "zero size rejected",
			query:   map[string]string{"size": "0"},
			wantErr: true,
		},
		{
			name:    "non-numeric size rejected",
			query:   map[string]string{"size": "lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.query {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			err := params.FromRequest(req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}
