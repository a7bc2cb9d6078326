package repository

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/booking/model"
)

func TestTransitionFilter_GuardSurvivesSetMerge(t *testing.T) {
	filter := transitionFilter(7, model.StatusWaiting)

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "id = :id")
	assert.Contains(t, where, "status = :status_from")
	assert.Equal(t, int64(7), args["id"])
	assert.Equal(t, model.StatusWaiting, args["status_from"])

	// The conditional update merges the SET map into the same named args.
	// The WHERE guard must keep binding the current status, not the target.
	maps.Copy(args, map[string]any{model.FieldStatus: model.StatusApproved})

	assert.Equal(t, model.StatusWaiting, args["status_from"])
	assert.Equal(t, model.StatusApproved, args[model.FieldStatus])
	assert.NotContains(t, where, "status = :status ")
}

func TestTransitionFilter_PerStatus(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "approve", from: model.StatusWaiting, to: model.StatusApproved},
		{name: "reject", from: model.StatusWaiting, to: model.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := transitionFilter(1, tt.from)

			_, args := filter.GetWhereClause()
			maps.Copy(args, map[string]any{model.FieldStatus: tt.to})

			assert.Equal(t, tt.from, args["status_from"])
			assert.Equal(t, tt.to, args[model.FieldStatus])
		})
	}
}
