package di_test

import (
	"errors"
	"testing"

	"github.com/devantler-tech/backtool/pkg/di"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errHandler = errors.New("handler error")
	errModule  = errors.New("module error")
)

func TestRuntime_Invoke_ModuleOrder(t *testing.T) {
	t.Parallel()

	var order []int

	record := func(n int) di.Module {
		return func(di.Injector) error {
			order = append(order, n)

			return nil
		}
	}

	runtime := di.New(record(1))

	err := runtime.Invoke(func(di.Injector) error {
		order = append(order, 4)

		return nil
	}, record(2), nil, record(3))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestRuntime_Invoke_HandlerError(t *testing.T) {
	t.Parallel()

	err := di.New().Invoke(func(di.Injector) error {
		return errHandler
	})

	require.ErrorIs(t, err, errHandler)
}

func TestRuntime_Invoke_ModuleError(t *testing.T) {
	t.Parallel()

	runtime := di.New(func(di.Injector) error {
		return errModule
	})

	err := runtime.Invoke(func(di.Injector) error {
		t.Fatal("handler should not be called when a module fails")

		return nil
	})

	require.ErrorIs(t, err, errModule)
}

func TestRuntime_Invoke_FreshInjectorPerCall(t *testing.T) {
	t.Parallel()

	type counter struct{ n int }

	runtime := di.New(func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (*counter, error) {
			return &counter{}, nil
		})

		return nil
	})

	for range 2 {
		err := runtime.Invoke(func(i di.Injector) error {
			c, err := do.Invoke[*counter](i)
			if err != nil {
				return err
			}

			c.n++
			assert.Equal(t, 1, c.n)

			return nil
		})
		require.NoError(t, err)
	}
}

func TestRunEWithRuntime_ProvidesStreams(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}

	var out testWriter

	cmd.SetOut(&out)

	runE := di.RunEWithRuntime(di.New(), func(received *cobra.Command, injector di.Injector) error {
		assert.Same(t, cmd, received)

		streams, err := di.ResolveStreams(injector)
		if err != nil {
			return err
		}

		assert.Same(t, &out, streams.Out)

		return nil
	})

	require.NoError(t, runE(cmd, nil))
}

func TestRunEWithRuntime_HandlerError(t *testing.T) {
	t.Parallel()

	runE := di.RunEWithRuntime(di.New(), func(*cobra.Command, di.Injector) error {
		return errHandler
	})

	err := runE(&cobra.Command{Use: "test"}, nil)
	require.ErrorIs(t, err, errHandler)
}

type testWriter struct {
	data []byte
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)

	return len(p), nil
}
