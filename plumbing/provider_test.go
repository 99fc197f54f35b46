package plumbing_test

import (
	"errors"
	"testing"

	"github.com/aikaryashala/kitup/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func TestProviderGet(t *testing.T) {
	provider := plumbing.NewProvider[int, string](errNotFound)
	provider.Register(func(n int) (string, bool) {
		if n == 1 {
			return "one", true
		}
		return "", false
	})
	provider.Register(func(n int) (string, bool) {
		if n > 0 {
			return "positive", true
		}
		return "", false
	})

	value, err := provider.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "one", value, "the first matching factory should win")

	value, err = provider.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "positive", value)

	_, err = provider.Get(-1)
	require.ErrorIs(t, err, errNotFound)
}

func TestProviderGetAll(t *testing.T) {
	provider := plumbing.NewProvider[int, string](errNotFound)
	provider.Register(func(n int) (string, bool) { return "a", n > 0 })
	provider.Register(func(n int) (string, bool) { return "b", n > 1 })

	values, err := provider.GetAll(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)

	_, err = provider.GetAll(0)
	require.ErrorIs(t, err, errNotFound)
}

func TestLazyService(t *testing.T) {
	provider := plumbing.NewProvider[int, string](errNotFound)
	var calls int
	provider.Register(func(n int) (string, bool) {
		calls++
		return "value", true
	})

	service := plumbing.NewLazyService[int, string](provider, 1)

	for i := 0; i < 3; i++ {
		value, err := service.Get()
		require.NoError(t, err)
		assert.Equal(t, "value", value)
	}
	assert.Equal(t, 1, calls, "the value should be resolved only once")
}
