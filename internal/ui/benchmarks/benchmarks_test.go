package benchmarks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/devsetup/internal/catalog"
)

func TestStackEstimate(t *testing.T) {
	t.Run("sums method timings", func(t *testing.T) {
		stack := catalog.Stack{
			Tools: []catalog.ToolSpec{
				{Name: "pandoc", Method: catalog.MethodBrew},
				{Name: "zotero", Method: catalog.MethodCask},
			},
		}

		assert.Equal(t, 195*time.Second, StackEstimate(stack))
	})

	t.Run("conda env adds creation cost", func(t *testing.T) {
		stack := catalog.Stack{
			CondaEnv: "datasci",
			Tools: []catalog.ToolSpec{
				{Name: "numpy", Method: catalog.MethodConda},
			},
		}

		assert.Equal(t, 120*time.Second, StackEstimate(stack))
	})

	t.Run("every default stack has a positive estimate", func(t *testing.T) {
		for _, stack := range catalog.Default().Stacks {
			assert.Positive(t, StackEstimate(stack), stack.ID)
		}
	})
}

func TestEstimateRemaining(t *testing.T) {
	// One brew tool at 45s plus two pip tools at 20s each.
	stack := catalog.Stack{
		Tools: []catalog.ToolSpec{
			{Name: "pyenv", Method: catalog.MethodBrew},
			{Name: "flask", Method: catalog.MethodPip},
			{Name: "django", Method: catalog.MethodPip},
		},
	}

	t.Run("nothing completed", func(t *testing.T) {
		assert.Equal(t, 85*time.Second, EstimateRemaining(stack, 0, 0))
	})

	t.Run("elapsed time on the current tool is subtracted", func(t *testing.T) {
		assert.Equal(t, 70*time.Second, EstimateRemaining(stack, 0, 15*time.Second))
	})

	t.Run("overrun tool contributes zero, not negative", func(t *testing.T) {
		assert.Equal(t, 40*time.Second, EstimateRemaining(stack, 0, 10*time.Minute))
	})

	t.Run("all completed", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), EstimateRemaining(stack, len(stack.Tools), 0))
	})

	t.Run("unknown method falls back to a default", func(t *testing.T) {
		odd := catalog.Stack{Tools: []catalog.ToolSpec{{Name: "x", Method: catalog.InstallMethod("weird")}}}
		require.Equal(t, 30*time.Second, EstimateRemaining(odd, 0, 0))
	})
}
