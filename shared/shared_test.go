package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/shared"
	"shareit/shared/constant"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "valid id", input: "42", want: 42},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, int64(7))

		got, err := shared.UserIDFromContext(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), got)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := shared.UserIDFromContext(context.Background())

		assert.Error(t, err)
	})
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name        string `db:"name"`
		Description string `db:"description"`
		Available   *bool  `db:"available"`
		Ignored     string
	}

	available := false
	fields := shared.TransformFields(updateRequest{
		Name:      "drill",
		Available: &available,
		Ignored:   "nope",
	})

	assert.Equal(t, map[string]any{
		"name":      "drill",
		"available": false,
	}, fields)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(3, "id", "items")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(items.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(3)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "user:get", shared.BuildCacheKey("user:get"))
	assert.Equal(t, "user:get:3", shared.BuildCacheKey("user:get", "3"))
	assert.Equal(t, "limiter:1.2.3.4:go-test", shared.BuildCacheKey("limiter", "1.2.3.4", "go-test"))
}
