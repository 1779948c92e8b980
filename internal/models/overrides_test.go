package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesSentinels(t *testing.T) {
	o := OverridesFromSentinels(map[string]int{
		"imp_bank":    5,
		"stadium":     -1,
		"imp_farm":    -7,
		"imp_unknown": 3,
	})

	n, ok := o.Get(Bank)
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	assert.False(t, o.Has(Stadium), "-1 means unset")
	n, ok = o.Get(Farm)
	assert.True(t, ok)
	assert.Equal(t, 0, n, "other negatives pin 0")
	assert.Equal(t, 2, o.Len())
	assert.True(t, o.AnyOf(Barracks, Farm))
	assert.False(t, o.AnyOf(Barracks, Hangar))

	o.SetSentinel(Bank, UnsetOverride)
	assert.False(t, o.Has(Bank))
}

func TestOverridesZeroValue(t *testing.T) {
	var o Overrides
	assert.False(t, o.Has(Bank))
	o.Set(Bank, 2)
	assert.True(t, o.Has(Bank))

	var order []Improvement
	o.Set(CoalPower, 1)
	o.EachSet(func(imp Improvement, _ int) { order = append(order, imp) })
	assert.Equal(t, []Improvement{CoalPower, Bank}, order)
}

func TestPlanRecordRoundTrip(t *testing.T) {
	plan := &BuildPlan{InfraNeeded: 2000, ImpTotal: 40}
	plan.Counts.UraniumMine = 2
	plan.Counts.OilRefinery = 1
	plan.Counts.Hangar = 5
	plan.Counts.Stadium = 3

	rec := plan.Record()
	assert.Equal(t, 2, rec.ImpUraniumMine)
	assert.Equal(t, 1, rec.ImpGasRefinery)
	assert.Equal(t, 5, rec.ImpHangars)
	assert.Equal(t, plan, rec.Plan())
	assert.Equal(t, 11, plan.Used())
	assert.Equal(t, 29, plan.Free())
}

func TestPlanRecordKeyOrder(t *testing.T) {
	data, err := json.Marshal((&BuildPlan{}).Record())
	require.NoError(t, err)

	want := []string{`"infra_needed"`, `"imp_total"`}
	for _, imp := range AllImprovements() {
		want = append(want, `"`+imp.Key()+`"`)
	}

	s := string(data)
	last := -1
	for _, key := range want {
		idx := strings.Index(s, key)
		require.GreaterOrEqual(t, idx, 0, "missing %s", key)
		assert.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
}

func TestPlanOverridesReproduceCounts(t *testing.T) {
	plan := &BuildPlan{ImpTotal: 10}
	plan.Counts.Farm = 4

	o := plan.Overrides()
	assert.Equal(t, 27, o.Len(), "every improvement is pinned, zeros included")
	n, _ := o.Get(Farm)
	assert.Equal(t, 4, n)
	n, ok := o.Get(Stadium)
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}
