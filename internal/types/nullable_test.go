package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rateUpdate struct {
	Name         string            `json:"name"`
	BillableRate Nullable[float64] `json:"billable_rate,omitzero"`
}

func TestNullableSerializesThreeStates(t *testing.T) {
	tests := []struct {
		name string
		in   rateUpdate
		want string
	}{
		{name: "absent", in: rateUpdate{Name: "a"}, want: `{"name":"a"}`},
		{name: "null", in: rateUpdate{Name: "a", BillableRate: Null[float64]()}, want: `{"name":"a","billable_rate":null}`},
		{name: "value", in: rateUpdate{Name: "a", BillableRate: Value(12.5)}, want: `{"name":"a","billable_rate":12.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestNullableDecodesThreeStates(t *testing.T) {
	var absent, null, value rateUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a"}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","billable_rate":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","billable_rate":3}`), &value))

	assert.True(t, absent.BillableRate.IsZero())
	assert.False(t, absent.BillableRate.IsNull())

	assert.False(t, null.BillableRate.IsZero())
	assert.True(t, null.BillableRate.IsNull())
	assert.Nil(t, null.BillableRate.Ptr())

	v, ok := value.BillableRate.Get()
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestFromPtr(t *testing.T) {
	assert.True(t, FromPtr[string](nil).IsNull())

	s := "x"
	n := FromPtr(&s)
	require.NotNil(t, n.Ptr())
	assert.Equal(t, "x", *n.Ptr())
	assert.NotSame(t, &s, n.Ptr())
}

func TestNullableInvalidValue(t *testing.T) {
	var n Nullable[int]
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &n))
}
