package solidtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yonasBSD/solidtime/internal/schema"
	"github.com/yonasBSD/solidtime/internal/types"
)

func mustValidate(t *testing.T, shape schema.Shape, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	_, err = schema.MustCompile(shape).ValidateJSON(b)
	require.NoError(t, err, string(b))
	return string(b)
}

func TestRequestTypesMatchTheirSchemas(t *testing.T) {
	billable := true
	rate := 12000.0

	tests := []struct {
		name  string
		shape schema.Shape
		value any
		want  string
	}{
		{
			name:  "client store",
			shape: ClientStoreRequestSchema,
			value: ClientStoreRequest{Name: "Acme"},
			want:  `{"name":"Acme"}`,
		},
		{
			name:  "project store without rate",
			shape: ProjectStoreRequestSchema,
			value: ProjectStoreRequest{Name: "Web", Color: "#ef5350", IsBillable: true},
			want:  `{"name":"Web","color":"#ef5350","is_billable":true}`,
		},
		{
			name:  "project store clearing client",
			shape: ProjectStoreRequestSchema,
			value: ProjectStoreRequest{Name: "Web", Color: "#ef5350", ClientID: types.Null[string](), BillableRate: types.Value(rate)},
			want:  `{"name":"Web","color":"#ef5350","is_billable":false,"client_id":null,"billable_rate":12000}`,
		},
		{
			name:  "member update role only",
			shape: MemberUpdateRequestSchema,
			value: MemberUpdateRequest{Role: RoleManager},
			want:  `{"role":"manager"}`,
		},
		{
			name:  "member update clearing rate",
			shape: MemberUpdateRequestSchema,
			value: MemberUpdateRequest{BillableRate: types.Null[float64]()},
			want:  `{"billable_rate":null}`,
		},
		{
			name:  "time entry store starting a timer",
			shape: TimeEntryStoreRequestSchema,
			value: TimeEntryStoreRequest{MemberID: schema.ExampleUUID, Start: "2024-03-01T09:00:00Z"},
			want:  `{"member_id":"` + schema.ExampleUUID + `","start":"2024-03-01T09:00:00Z","billable":false}`,
		},
		{
			name:  "time entry update",
			shape: TimeEntryUpdateRequestSchema,
			value: TimeEntryUpdateRequest{End: types.Value("2024-03-01T10:00:00Z"), Description: types.Null[string](), Billable: &billable},
			want:  `{"end":"2024-03-01T10:00:00Z","billable":true,"description":null}`,
		},
		{
			name:  "bulk update",
			shape: TimeEntryUpdateMultipleRequestSchema,
			value: TimeEntryUpdateMultipleRequest{
				IDs:     []string{schema.ExampleUUID},
				Changes: TimeEntryChanges{Tags: types.Value([]string{schema.ExampleUUID}), ProjectID: types.Null[string]()},
			},
			want: `{"ids":["` + schema.ExampleUUID + `"],"changes":{"project_id":null,"tags":["` + schema.ExampleUUID + `"]}}`,
		},
		{
			name:  "invitation",
			shape: InvitationStoreRequestSchema,
			value: InvitationStoreRequest{Email: "jane@example.com", Role: RoleEmployee},
			want:  `{"email":"jane@example.com","role":"employee"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustValidate(t, tt.shape, tt.value)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestResponseTypesDecodeExamples(t *testing.T) {
	var project Envelope[Project]
	b, err := json.Marshal(schema.Example(data(ProjectResourceSchema)))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &project))
	assert.Equal(t, "x", project.Data.Name)
	require.NotNil(t, project.Data.ClientID)

	var page Paginated[Task]
	raw := []byte(`{
		"data": [{"id":"t1","name":"Design","is_done":false,"project_id":"p1","created_at":"x","updated_at":"y"}],
		"links": {"first":"https://app.solidtime.io/api/v1/x?page=1","last":null,"prev":null,"next":null},
		"meta": {"current_page":1,"from":1,"last_page":3,"links":[],"path":null,"per_page":1,"to":1,"total":3}
	}`)
	_, err = schema.MustCompile(paginated(TaskResourceSchema)).ValidateJSON(raw)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, 3, page.Meta.Total)
	assert.Equal(t, 1, page.Meta.PerPage)
	assert.Equal(t, 1, page.Meta.CurrentPage)
	require.NotNil(t, page.Links.First)
	assert.Nil(t, page.Links.Next)
	assert.Equal(t, "Design", page.Data[0].Name)
}

func TestTimeEntryRunning(t *testing.T) {
	end := "2024-03-01T10:00:00Z"
	assert.True(t, TimeEntry{}.Running())
	assert.False(t, TimeEntry{End: &end}.Running())
}
