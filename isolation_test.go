package pmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Values []int
	Labels map[string]string
}

func TestQueueItems_IndexesInOrder(t *testing.T) {
	items, err := queueItems([]string{"a", "b", "c"}, false)
	require.NoError(t, err)
	require.Equal(t, []item[string]{{0, "a"}, {1, "b"}, {2, "c"}}, items)
}

func TestQueueItems_IsolationDeepCopies(t *testing.T) {
	in := []*payload{
		{Values: []int{1, 2}, Labels: map[string]string{"k": "v"}},
		nil,
	}

	items, err := queueItems(in, true)
	require.NoError(t, err)
	require.Len(t, items, 2)

	cp := items[0].val
	require.NotSame(t, in[0], cp)
	require.Equal(t, in[0], cp)

	cp.Values[0] = 100
	cp.Labels["k"] = "changed"
	require.Equal(t, 1, in[0].Values[0])
	require.Equal(t, "v", in[0].Labels["k"])

	require.Nil(t, items[1].val)
}

func TestQueueItems_WithoutIsolationSharesPointers(t *testing.T) {
	in := []*payload{{Values: []int{1}}}
	items, err := queueItems(in, false)
	require.NoError(t, err)
	require.Same(t, in[0], items[0].val)
}
