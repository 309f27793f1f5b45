package arena

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/arena/internal/llm"
	"github.com/agenthands/arena/internal/model"
)

func testQuestion(t *testing.T) model.Question {
	t.Helper()
	q, err := model.NewQuestion("What is 2+2?")
	require.NoError(t, err)
	return q
}

func TestDispatch_OneOutcomePerProvider(t *testing.T) {
	tests := []struct {
		name      string
		providers map[string]llm.Client
		wantKinds map[string]model.OutcomeKind
	}{
		{
			name: "all succeed",
			providers: map[string]llm.Client{
				"a": &fakeClient{reply: "answer a"},
				"b": &fakeClient{reply: "answer b"},
				"c": &fakeClient{reply: "answer c"},
			},
			wantKinds: map[string]model.OutcomeKind{
				"a": model.OutcomeSuccess,
				"b": model.OutcomeSuccess,
				"c": model.OutcomeSuccess,
			},
		},
		{
			name: "mixed outcomes",
			providers: map[string]llm.Client{
				"ok":    &fakeClient{reply: "fine"},
				"slow":  &fakeClient{reply: "late", delay: time.Second},
				"broke": &fakeClient{err: errors.New("auth error")},
			},
			wantKinds: map[string]model.OutcomeKind{
				"ok":    model.OutcomeSuccess,
				"slow":  model.OutcomeTimeout,
				"broke": model.OutcomeFailure,
			},
		},
		{
			name: "all fail",
			providers: map[string]llm.Client{
				"x": &fakeClient{err: errors.New("quota exceeded")},
				"y": &fakeClient{err: errors.New("bad key")},
			},
			wantKinds: map[string]model.OutcomeKind{
				"x": model.OutcomeFailure,
				"y": model.OutcomeFailure,
			},
		},
		{
			name: "empty reply is a failure",
			providers: map[string]llm.Client{
				"empty": &fakeClient{reply: ""},
			},
			wantKinds: map[string]model.OutcomeKind{
				"empty": model.OutcomeFailure,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Dispatch(context.Background(), testQuestion(t), tt.providers, 50*time.Millisecond)
			require.NoError(t, err)

			assert.Len(t, results, len(tt.providers))
			for name, kind := range tt.wantKinds {
				o, ok := results[name]
				require.True(t, ok, "missing outcome for %s", name)
				assert.Equal(t, kind, o.Kind, "outcome kind for %s", name)
			}
		})
	}
}

func TestDispatch_ConfigErrors(t *testing.T) {
	q := testQuestion(t)

	_, err := Dispatch(context.Background(), q, nil, time.Second)
	assert.ErrorIs(t, err, ErrNoProviders)

	_, err = Dispatch(context.Background(), q, map[string]llm.Client{"a": &fakeClient{reply: "x"}}, 0)
	assert.ErrorIs(t, err, ErrBadTimeout)

	_, err = Dispatch(context.Background(), q, map[string]llm.Client{"a": &fakeClient{reply: "x"}}, -time.Second)
	assert.ErrorIs(t, err, ErrBadTimeout)
}

func TestDispatch_FailureCarriesCause(t *testing.T) {
	providers := map[string]llm.Client{
		"broke": &fakeClient{err: errors.New("auth error")},
	}
	results, err := Dispatch(context.Background(), testQuestion(t), providers, time.Second)
	require.NoError(t, err)

	assert.Equal(t, "auth error", results["broke"].Err)
	assert.Nil(t, results["broke"].Answer)
}

func TestDispatch_SuccessRecordsElapsed(t *testing.T) {
	providers := map[string]llm.Client{
		"ok": &fakeClient{reply: "answer", delay: 10 * time.Millisecond},
	}
	results, err := Dispatch(context.Background(), testQuestion(t), providers, time.Second)
	require.NoError(t, err)

	o := results["ok"]
	require.Equal(t, model.OutcomeSuccess, o.Kind)
	assert.Equal(t, "answer", o.Answer.Text)
	assert.GreaterOrEqual(t, o.Answer.Elapsed, 10*time.Millisecond)
}

// A provider slower than its deadline must yield Timeout even when the
// underlying call eventually completes: the late result is discarded, never
// written over the timeout outcome.
func TestDispatch_LateResultDiscarded(t *testing.T) {
	providers := map[string]llm.Client{
		"stuck": &fakeClient{reply: "too late", delay: 150 * time.Millisecond, ignoreCtx: true},
	}

	results, err := Dispatch(context.Background(), testQuestion(t), providers, 20*time.Millisecond)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, model.OutcomeTimeout, results["stuck"].Kind)
	assert.Nil(t, results["stuck"].Answer)

	// Let the abandoned call finish, then confirm the outcome is unchanged.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, model.OutcomeTimeout, results["stuck"].Kind)
}

// A stuck provider must not delay the completion of the others.
func TestDispatch_SlowProviderDoesNotBlockOthers(t *testing.T) {
	providers := map[string]llm.Client{
		"fast": &fakeClient{reply: "quick"},
		"slow": &fakeClient{reply: "never", delay: 10 * time.Second},
	}

	start := time.Now()
	results, err := Dispatch(context.Background(), testQuestion(t), providers, 100*time.Millisecond)
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, model.OutcomeSuccess, results["fast"].Kind)
	assert.Equal(t, model.OutcomeTimeout, results["slow"].Kind)
}

func TestDispatch_Deterministic(t *testing.T) {
	providers := map[string]llm.Client{
		"a": &fakeClient{reply: "alpha"},
		"b": &fakeClient{reply: "beta"},
	}
	q := testQuestion(t)

	first, err := Dispatch(context.Background(), q, providers, time.Second)
	require.NoError(t, err)
	second, err := Dispatch(context.Background(), q, providers, time.Second)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for name, o := range first {
		assert.Equal(t, o.Kind, second[name].Kind)
		assert.Equal(t, o.Answer.Text, second[name].Answer.Text)
	}
}
