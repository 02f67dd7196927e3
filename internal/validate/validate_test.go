package validate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/biogrid/internal/model"
)

// manifest is a test helper building a schema-complete manifest.
func manifest(name string, inputs, outputs []model.Port) *model.ModelManifest {
	return &model.ModelManifest{
		Name:          name,
		Category:      "observability",
		Inputs:        inputs,
		Outputs:       outputs,
		Entrypoint:    model.EntrypointRef{Handler: "Handler"},
		FSInformation: model.NewFSInfo("modules/" + name + "/manifest.hcl"),
	}
}

func ports(names ...string) []model.Port {
	out := make([]model.Port, 0, len(names))
	for _, n := range names {
		out = append(out, model.Port{Name: n, Type: model.PortTypeState})
	}
	return out
}

func TestManifests_AllValid(t *testing.T) {
	t.Parallel()

	results := Manifests(context.Background(), []*model.ModelManifest{
		manifest("monitor-b", ports("state_a"), ports("out")),
		manifest("monitor-a", ports("state_a", "state_b"), ports("out")),
	}, 4)

	require.Len(t, results, 2)
	// Results come back sorted by identifier, not discovery order.
	require.Equal(t, "monitor-a", results[0].Manifest.Name)
	require.Equal(t, "monitor-b", results[1].Manifest.Name)
	for _, res := range results {
		require.Equal(t, model.StatusSchemaValid, res.Status)
		require.Empty(t, res.Diagnostics)
	}
}

func TestManifests_DuplicateIdentifier_ExactlyOneError(t *testing.T) {
	t.Parallel()

	a := manifest("same-monitor", ports("x"), ports("y"))
	b := manifest("same-monitor", ports("x"), ports("y"))
	b.FSInformation = model.NewFSInfo("modules/other/manifest.hcl")

	results := Manifests(context.Background(), []*model.ModelManifest{a, b}, 4)

	var dupErrors []model.Diagnostic
	for _, res := range results {
		for _, d := range res.Diagnostics {
			if d.Severity == model.SeverityError {
				dupErrors = append(dupErrors, d)
			}
		}
	}
	require.Len(t, dupErrors, 1, "two manifests sharing an identifier must produce exactly one error")
	require.Contains(t, dupErrors[0].Message, `duplicate identifier "same-monitor"`)

	// One of the two is still schema-valid; the flagged one is not.
	require.Equal(t, model.StatusSchemaValid, results[0].Status)
	require.Equal(t, model.StatusSchemaInvalid, results[1].Status)
}

func TestManifests_DuplicateDetection_IndependentOfDiscoveryOrder(t *testing.T) {
	t.Parallel()

	build := func() (*model.ModelManifest, *model.ModelManifest) {
		a := manifest("same-monitor", ports("x"), ports("y"))
		b := manifest("same-monitor", ports("x"), ports("y"))
		b.FSInformation = model.NewFSInfo("modules/zz/manifest.hcl")
		return a, b
	}

	a1, b1 := build()
	forward := Manifests(context.Background(), []*model.ModelManifest{a1, b1}, 1)
	a2, b2 := build()
	reverse := Manifests(context.Background(), []*model.ModelManifest{b2, a2}, 1)

	require.Equal(t, forward[1].Diagnostics, reverse[1].Diagnostics)
	require.Equal(t, forward[1].Manifest.FSInformation.FilePath, reverse[1].Manifest.FSInformation.FilePath,
		"the duplicate error must attach to the same manifest regardless of discovery order")
}

func TestManifests_IdentifierRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "empty", id: "", expected: "identifier must not be empty"},
		{name: "uppercase", id: "StateMonitor", expected: "not kebab-case"},
		{name: "underscores", id: "state_monitor", expected: "not kebab-case"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			results := Manifests(context.Background(), []*model.ModelManifest{
				manifest(tc.id, ports("x"), ports("y")),
			}, 1)
			require.Len(t, results, 1)
			require.Equal(t, model.StatusSchemaInvalid, results[0].Status)
			require.Len(t, results[0].Diagnostics, 1)
			require.Contains(t, results[0].Diagnostics[0].Message, tc.expected)
		})
	}
}

func TestManifests_RequiresPortsOnBothSides(t *testing.T) {
	t.Parallel()

	results := Manifests(context.Background(), []*model.ModelManifest{
		manifest("empty-monitor", nil, nil),
	}, 1)

	require.Len(t, results, 1)
	require.Equal(t, model.StatusSchemaInvalid, results[0].Status)
	require.Len(t, results[0].Diagnostics, 2)
	require.Contains(t, results[0].Diagnostics[0].Message, "at least one input port")
	require.Contains(t, results[0].Diagnostics[1].Message, "at least one output port")
}

func TestManifests_DuplicatePortName_ExactlyOneError(t *testing.T) {
	t.Parallel()

	results := Manifests(context.Background(), []*model.ModelManifest{
		manifest("dup-port-monitor", ports("state_a", "state_a", "state_a"), ports("out")),
	}, 1)

	require.Len(t, results, 1)
	require.Equal(t, model.StatusSchemaInvalid, results[0].Status)
	require.Len(t, results[0].Diagnostics, 1)
	require.Contains(t, results[0].Diagnostics[0].Message, `duplicate port name "state_a" in input ports`)
}

func TestManifests_UnknownVisualizationKind(t *testing.T) {
	t.Parallel()

	m := manifest("viz-monitor", ports("x"), ports("y"))
	m.Visualizations = []model.VisualizationSpec{
		{Kind: model.VisualizationTimeseries},
		{Kind: "heatmap"},
	}

	results := Manifests(context.Background(), []*model.ModelManifest{m}, 1)

	require.Len(t, results[0].Diagnostics, 1)
	require.Contains(t, results[0].Diagnostics[0].Message, `unknown visualization kind "heatmap"`)
	require.Equal(t, model.StatusSchemaInvalid, results[0].Status)
}

func TestManifests_PortOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	forward := Manifests(context.Background(), []*model.ModelManifest{
		manifest("order-monitor", ports("state_a", "state_b", "state_c"), ports("out")),
	}, 1)
	permuted := Manifests(context.Background(), []*model.ModelManifest{
		manifest("order-monitor", ports("state_c", "state_a", "state_b"), ports("out")),
	}, 1)

	require.Equal(t, forward[0].Status, permuted[0].Status)
	require.Equal(t, forward[0].Diagnostics, permuted[0].Diagnostics)
}

func TestManifests_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []*model.ModelManifest {
		m := manifest("viz-monitor", ports("x", "x"), ports("y"))
		m.Visualizations = []model.VisualizationSpec{{Kind: "heatmap"}}
		return []*model.ModelManifest{
			m,
			manifest("other-monitor", ports("x"), nil),
		}
	}

	first := Manifests(context.Background(), build(), 8)
	second := Manifests(context.Background(), build(), 8)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Status, second[i].Status)
		if diff := cmp.Diff(first[i].Diagnostics, second[i].Diagnostics); diff != "" {
			t.Errorf("diagnostics differ between identical runs (-first +second):\n%s", diff)
		}
	}
}

func TestSchemaValid_FiltersInvalid(t *testing.T) {
	t.Parallel()

	results := Manifests(context.Background(), []*model.ModelManifest{
		manifest("good-monitor", ports("x"), ports("y")),
		manifest("bad-monitor", nil, ports("y")),
	}, 2)

	passing := SchemaValid(results)
	require.Len(t, passing, 1)
	require.Equal(t, "good-monitor", passing[0].Name)
}
