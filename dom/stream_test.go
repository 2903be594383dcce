package dom

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDeliversTopLevelRecords(t *testing.T) {
	input := `<feed><item>a</item><item>b</item><item>c</item></feed>`
	ctx := context.Background()
	var got []string
	for res := range Stream(ctx, strings.NewReader(input), "item") {
		require.NoError(t, res.Err)
		got = append(got, res.Element.TextContent())
	}
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0])
	assert.Equal(t, "c", got[2])
}

func TestStreamCancellation(t *testing.T) {
	input := `<feed><item>a</item><item>b</item><item>c</item></feed>`
	ctx, cancel := context.WithCancel(context.Background())
	ch := Stream(ctx, strings.NewReader(input), "item")
	<-ch
	cancel()
	for range ch {
	}
}
