package guard_test

import (
	"errors"
	"testing"

	"printflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)

		// nil validation error is also fine for a constructed guard
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Priority struct {
		name  string
		guard guard.ConstructorGuard
	}

	var errPriorityNotConstructed = errors.New("Priority must be created via NewPriority")

	newPriority := func(name string) (Priority, error) {
		if name == "" {
			return Priority{}, errors.New("name is required")
		}
		return Priority{
			name:  name,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validatePriority := func(p Priority) error {
		return p.guard.Validate(errPriorityNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		priority, err := newPriority("Alta")

		// Then
		require.NoError(t, err)
		require.NoError(t, validatePriority(priority))
		assert.Equal(t, "Alta", priority.name)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var priority Priority // zero value

		// When
		err := validatePriority(priority)

		// Then
		require.Error(t, err)
		assert.Equal(t, errPriorityNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPriority("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 20 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 20 {
		<-done
	}
}
