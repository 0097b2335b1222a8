package tests

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/joyautomation/dark-matter/pkg/rail"
	"github.com/joyautomation/dark-matter/pkg/rail/future"
	"github.com/joyautomation/dark-matter/pkg/rail/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestURLClassification runs the URL checking flow end to end: every address
// goes through a Result pipe (parse -> validate scheme -> classify) and the
// per-address Results are collapsed at the end.
func TestURLClassification(t *testing.T) {
	addresses := []string{
		// Valid by structure (nothing is fetched)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",

		// Invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := classifyAll(addresses)

	validCount := 0
	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		} else {
			validCount++
		}
	}

	// Every address produces exactly one classification
	assert.Equal(t, len(addresses), len(results))
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, 4, validCount)
}

func classifyAll(addresses []string) []string {
	ctx := context.Background()

	out := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		out = append(out, rail.Finally(ctx, classify(ctx, addr),
			func(_ context.Context, host string) string { return "host: " + host },
			func(_ context.Context, err error) string { return "invalid" },
		))
	}
	return out
}

func classify(ctx context.Context, addr string) rail.Result[string] {
	return pipe.R3(ctx,
		func(ctx context.Context) rail.Result[*url.URL] {
			return rail.Guard(ctx, func(_ context.Context) (*url.URL, error) {
				return url.Parse(addr)
			})
		},
		func(ctx context.Context, u *url.URL) rail.Result[*url.URL] {
			return rail.AndValidate(ctx, rail.Success(u),
				func(_ context.Context, u *url.URL) (bool, string) {
					return u.Scheme == "https" && strings.Contains(u.Host, "."),
						fmt.Sprintf("not a fetchable address: %s", addr)
				})
		},
		func(_ context.Context, u *url.URL) rail.Result[string] {
			return rail.Success(u.Host)
		},
	)
}

// TestAsyncPipelineAggregation drives the async ladder: each item is parsed
// and doubled on its own future, then everything is combined into a single
// Result slice.
func TestAsyncPipelineAggregation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inputs := []string{"1", "2", "3"}

	futures := make([]*future.Future[rail.Result[int]], 0, len(inputs))
	for _, in := range inputs {
		futures = append(futures, pipe.RAsync2(ctx,
			func(ctx context.Context) rail.Result[int] {
				return rail.Guard(ctx, func(_ context.Context) (int, error) {
					var n int
					_, err := fmt.Sscanf(in, "%d", &n)
					return n, err
				})
			},
			func(_ context.Context, n int) rail.Result[int] {
				return rail.Success(n * 2)
			},
		))
	}

	settled := make([]rail.Result[int], 0, len(futures))
	for _, f := range futures {
		r, err := f.Await(ctx)
		require.NoError(t, err, "result pipes must always resolve")
		settled = append(settled, r)
	}

	require.True(t, rail.AllSuccess(settled...))

	combined := rail.Combine(settled)
	require.True(t, combined.IsSuccess())
	assert.Equal(t, []int{2, 4, 6}, combined.Output())

	assert.Equal(t, []int{2, 4, 6}, rail.MustUnwrap(settled))
}

// TestFailureCarriesDiagnostics checks that a failure produced deep inside a
// pipe still carries its structured payload at the aggregation boundary.
func TestFailureCarriesDiagnostics(t *testing.T) {
	ctx := context.Background()

	bad := pipe.R2(ctx,
		func(ctx context.Context) rail.Result[int] { return rail.Success(1) },
		func(_ context.Context, n int) rail.Result[int] {
			return rail.Fail[int](&rail.Failure{
				Reason:  "quota check: limit reached",
				Message: "limit reached",
				Name:    "QuotaError",
				Context: "quota check: ",
			})
		},
	)

	combined := rail.Combine([]rail.Result[int]{rail.Success(0), bad})
	require.True(t, combined.IsFailure())

	f := combined.Failure()
	assert.Equal(t, "quota check: limit reached", f.Reason)
	assert.Equal(t, "QuotaError", f.Name)
	assert.Equal(t, "quota check: ", f.Context)
}
