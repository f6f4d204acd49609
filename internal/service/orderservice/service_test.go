package orderservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/service/orderservice"
)

func TestViewFor_AllStatusesHaveDistinctViews(t *testing.T) {
	svc := orderservice.NewService()
	seen := map[domain.ViewVariant]bool{}

	for _, status := range orderservice.Statuses() {
		view, err := svc.ViewFor(string(status))
		require.NoError(t, err, status)
		assert.Equal(t, status, view.Status)
		assert.NotEmpty(t, view.Title)
		assert.False(t, seen[view.Variant], "variante repetida: %s", view.Variant)
		seen[view.Variant] = true
	}
	assert.Len(t, seen, 9)
}

func TestViewFor_NormalizesInput(t *testing.T) {
	view, err := orderservice.NewService().ViewFor("  Shipping ")

	require.NoError(t, err)
	assert.Equal(t, domain.ViewShipping, view.Variant)
	assert.Equal(t, domain.OrderShipping, view.Status)
}

func TestViewFor_UnknownStatus(t *testing.T) {
	_, err := orderservice.NewService().ViewFor("lost")

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestViewFor_OffTimelineStatusesHaveNoStep(t *testing.T) {
	svc := orderservice.NewService()
	for _, s := range []string{"cancelled", "dispute", "return"} {
		view, err := svc.ViewFor(s)
		require.NoError(t, err)
		assert.Zero(t, view.Step, s)
	}
}
