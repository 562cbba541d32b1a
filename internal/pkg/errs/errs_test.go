package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("registry lookup failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: registry lookup failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classified_with_errors_Is", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDuplicateKeyError(t *testing.T) {
	t.Run("NewDuplicateKeyError", func(t *testing.T) {
		err := errs.NewDuplicateKeyError("orderId", "abc")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "abc", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "duplicate key: abc", err.Error())
		assert.Equal(t, errs.ErrDuplicateKey, err.Unwrap())
	})

	t.Run("NewDuplicateKeyErrorWithCause", func(t *testing.T) {
		cause := errors.New("id already present")
		err := errs.NewDuplicateKeyErrorWithCause("orderId", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"duplicate key: param is: orderId, ID is: abc (cause: id already present)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("order-1", "created", "assigned")

		assert.Equal(t, "order-1", err.ID)
		assert.Equal(t, "created", err.Current)
		assert.Equal(t, "assigned", err.Target)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"invalid status transition: ID is: order-1, created -> assigned",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("claimed by another driver")
		err := errs.NewInvalidTransitionErrorWithCause("order-1", "assigned", "assigned", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid status transition: ID is: order-1, assigned -> assigned (cause: claimed by another driver)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestTimeoutError(t *testing.T) {
	t.Run("NewTimeoutError", func(t *testing.T) {
		err := errs.NewTimeoutError("pull available orders")

		assert.Equal(t, "pull available orders", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation timed out: pull available orders", err.Error())
		assert.Equal(t, errs.ErrTimeout, err.Unwrap())
	})

	t.Run("NewTimeoutErrorWithCause", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := errs.NewTimeoutErrorWithCause("pull available orders", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation timed out: pull available orders (cause: context deadline exceeded)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrTimeout)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize_function_with_newlines", func(t *testing.T) {
		cause := errors.New("hello\nworld")
		err := errs.NewValueIsInvalidErrorWithCause("text", cause)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}
